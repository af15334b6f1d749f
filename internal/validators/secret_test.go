// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestJWT(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "pinata-user",
		"iat": 1700000000,
	})
	s, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return s
}

func TestNewSecretValidator(t *testing.T) {
	v, err := NewSecretValidator("")
	require.NoError(t, err)
	assert.IsType(t, &PrefixValidator{}, v)

	v, err = NewSecretValidator(FormatPrefix)
	require.NoError(t, err)
	assert.IsType(t, &PrefixValidator{}, v)

	v, err = NewSecretValidator(FormatJWT)
	require.NoError(t, err)
	assert.IsType(t, &JWTValidator{}, v)

	_, err = NewSecretValidator("x509")
	assert.ErrorIs(t, err, ErrUnknownSecretFormat)
}

func TestPrefixValidator_Validate(t *testing.T) {
	v := NewPrefixValidator(JWTPrefix)

	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "jwt-like", secret: "eyJhbGciOi..."},
		{name: "prefix only", secret: "eyJ"},
		{name: "empty", secret: "", wantErr: ErrEmptySecret},
		{name: "wrong prefix", secret: "sk_live_123", wantErr: ErrMissingPrefix},
		{name: "case matters", secret: "EYJhbGciOi", wantErr: ErrMissingPrefix},
		{name: "leading space", secret: " eyJhbGciOi", wantErr: ErrMissingPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.secret)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidSecretFormat)
		})
	}
}

func TestPrefixValidator_CustomPrefix(t *testing.T) {
	v := NewPrefixValidator("ghp_")

	assert.NoError(t, v.Validate("ghp_abcdef"))
	assert.ErrorIs(t, v.Validate("eyJhbGciOi"), ErrMissingPrefix)
}

func TestJWTValidator_Validate(t *testing.T) {
	v := NewJWTValidator()
	valid := signedTestJWT(t)

	noAlgHeader := base64.RawURLEncoding.EncodeToString([]byte(`{"typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x"}`))

	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "signed token", secret: valid},
		{name: "bad signature still passes", secret: valid[:len(valid)-2] + "AA"},
		{name: "empty", secret: "", wantErr: true},
		{name: "prefix only", secret: "eyJhbGciOi...", wantErr: true},
		{name: "two segments", secret: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0", wantErr: true},
		{name: "garbage payload", secret: "eyJhbGciOiJIUzI1NiJ9.!!!.sig", wantErr: true},
		{name: "missing alg", secret: noAlgHeader + "." + claims + ".sig", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.secret)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSecretFormat)
		})
	}
}
