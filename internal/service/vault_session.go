// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/codec"
	"github.com/MKhiriev/go-jwt-vault/internal/crypto"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/store"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
	"github.com/MKhiriev/go-jwt-vault/internal/validators"
	"github.com/MKhiriev/go-jwt-vault/internal/workers"
	"github.com/MKhiriev/go-jwt-vault/models"
)

type listenerEntry struct {
	id uint64
	fn models.StateListener
}

type vaultSession struct {
	keyChain  crypto.KeyChainService
	store     store.VaultStore
	validator validators.SecretValidator
	pool      *workers.Pool
	ids       *utils.UUIDGenerator
	now       func() time.Time

	mu         sync.Mutex
	listeners  []listenerEntry
	listenerID uint64

	logger *logger.Logger
}

// NewVaultSession wires a [VaultSession] over its collaborators. Key
// derivation and cipher work runs on pool.
func NewVaultSession(
	keyChain crypto.KeyChainService,
	vaultStore store.VaultStore,
	validator validators.SecretValidator,
	pool *workers.Pool,
	logger *logger.Logger,
) VaultSession {
	return &vaultSession{
		keyChain:  keyChain,
		store:     vaultStore,
		validator: validator,
		pool:      pool,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *vaultSession) SaveSecret(ctx context.Context, secret, passphrase string) error {
	log := s.logger.WithOperation("save", s.ids.Generate())
	log.Debug().Msg("saving secret")

	if err := s.validator.Validate(secret); err != nil {
		log.Warn().Err(err).Msg("secret rejected")
		return mapVaultError(err)
	}

	var (
		token   string
		sealErr error
	)
	if err := s.pool.Do(ctx, func() { token, sealErr = s.seal(secret, passphrase) }); err != nil {
		log.Error().Err(err).Msg("encryption did not finish")
		return err
	}
	if sealErr != nil {
		log.Error().Err(sealErr).Msg("encryption failed")
		return sealErr
	}

	if err := s.store.Put(ctx, token); err != nil {
		log.Error().Err(err).Msg("store write failed")
		return mapVaultError(err)
	}

	log.Info().Msg("secret saved")
	s.notify(models.VaultState{Configured: true, ChangedAt: s.now()})
	return nil
}

// seal runs on a pool goroutine. It wipes the key and the plaintext copy
// itself because the caller may stop waiting before it returns.
func (s *vaultSession) seal(secret, passphrase string) (string, error) {
	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("%w: generate salt: %w", ErrDerivation, err)
	}

	nonce, err := s.keyChain.GenerateNonce()
	if err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrCipher, err)
	}

	key, err := s.keyChain.DeriveKey(passphrase, salt)
	if err != nil {
		return "", mapVaultError(err)
	}
	defer crypto.Zero(key)

	plain := []byte(secret)
	defer crypto.Zero(plain)

	sealed, err := s.keyChain.Seal(key, nonce, plain)
	if err != nil {
		return "", mapVaultError(err)
	}

	return codec.Encode(models.VaultBlob{Salt: salt, Nonce: nonce, Ciphertext: sealed}), nil
}

func (s *vaultSession) UseSecret(ctx context.Context, passphrase string) (string, error) {
	log := s.logger.WithOperation("use", s.ids.Generate())
	log.Debug().Msg("unlocking secret")

	token, found, err := s.store.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("store read failed")
		return "", mapVaultError(err)
	}
	if !found {
		log.Info().Msg("vault is empty")
		return "", ErrEmptyVault
	}

	blob, err := codec.Decode(token)
	if err != nil {
		log.Error().Err(err).Msg("stored token is malformed")
		return "", mapVaultError(err)
	}

	var (
		secret  string
		openErr error
	)
	if err = s.pool.Do(ctx, func() { secret, openErr = s.open(blob, passphrase) }); err != nil {
		log.Error().Err(err).Msg("decryption did not finish")
		return "", err
	}
	if openErr != nil {
		// wrong passphrase and tampering are logged the same way
		log.Warn().Err(openErr).Msg("secret could not be unlocked")
		return "", openErr
	}

	log.Info().Msg("secret unlocked")
	return secret, nil
}

// open runs on a pool goroutine, see seal.
func (s *vaultSession) open(blob models.VaultBlob, passphrase string) (string, error) {
	key, err := s.keyChain.DeriveKey(passphrase, blob.Salt)
	if err != nil {
		return "", mapVaultError(err)
	}
	defer crypto.Zero(key)

	plain, err := s.keyChain.Open(key, blob.Nonce, blob.Ciphertext)
	if err != nil {
		return "", mapVaultError(err)
	}
	defer crypto.Zero(plain)

	secret := string(plain)
	if err = s.validator.Validate(secret); err != nil {
		return "", mapVaultError(err)
	}

	return secret, nil
}

func (s *vaultSession) Clear(ctx context.Context) error {
	log := s.logger.WithOperation("clear", s.ids.Generate())

	if err := s.store.Delete(ctx); err != nil {
		log.Error().Err(err).Msg("store delete failed")
		return mapVaultError(err)
	}

	log.Info().Msg("secret cleared")
	s.notify(models.VaultState{Configured: false, ChangedAt: s.now()})
	return nil
}

func (s *vaultSession) IsConfigured(ctx context.Context) bool {
	ok, err := s.store.Exists(ctx)
	if err != nil {
		s.logger.WithOperation("status", s.ids.Generate()).
			Error().Err(err).Msg("cannot read vault state, reporting empty")
		return false
	}

	return ok
}

func (s *vaultSession) Subscribe(listener models.StateListener) func() {
	if listener == nil {
		return func() {}
	}

	s.mu.Lock()
	s.listenerID++
	id := s.listenerID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: listener})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify calls listeners in registration order outside the lock, so a
// listener may unsubscribe itself.
func (s *vaultSession) notify(state models.VaultState) {
	s.mu.Lock()
	listeners := make([]models.StateListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l.fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
