// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Format names accepted by [NewSecretValidator].
const (
	FormatPrefix = "prefix"
	FormatJWT    = "jwt"
)

// JWTPrefix is what every compact JWT starts with: the base64url encoding
// of `{"`.
const JWTPrefix = "eyJ"

// NewSecretValidator returns the validator registered under format.
// An empty format selects [FormatPrefix].
func NewSecretValidator(format string) (SecretValidator, error) {
	switch format {
	case "", FormatPrefix:
		return NewPrefixValidator(JWTPrefix), nil
	case FormatJWT:
		return NewJWTValidator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSecretFormat, format)
	}
}

// PrefixValidator accepts any non-empty string that starts with a fixed
// magic prefix.
type PrefixValidator struct {
	prefix string
}

func NewPrefixValidator(prefix string) *PrefixValidator {
	return &PrefixValidator{prefix: prefix}
}

func (v *PrefixValidator) Validate(secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSecretFormat, ErrEmptySecret)
	}
	if !strings.HasPrefix(secret, v.prefix) {
		return fmt.Errorf("%w: %w", ErrInvalidSecretFormat, ErrMissingPrefix)
	}

	return nil
}

// JWTValidator checks that a secret parses as a compact JWT: three
// segments, a decodable JSON header naming an algorithm, and decodable
// JSON claims. The signature is never verified since the vault holds no
// key to verify it with.
type JWTValidator struct {
	parser *jwt.Parser
}

func NewJWTValidator() *JWTValidator {
	return &JWTValidator{parser: jwt.NewParser()}
}

func (v *JWTValidator) Validate(secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSecretFormat, ErrEmptySecret)
	}

	token, _, err := v.parser.ParseUnverified(secret, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrInvalidSecretFormat, ErrMalformedJWT, err)
	}
	if alg, _ := token.Header["alg"].(string); alg == "" {
		return fmt.Errorf("%w: %w: missing alg header", ErrInvalidSecretFormat, ErrMalformedJWT)
	}

	return nil
}
