// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrInvalidSecretFormat = errors.New("invalid secret format")
	ErrEmptySecret         = errors.New("secret is empty")
	ErrMissingPrefix       = errors.New("secret does not start with the expected prefix")
	ErrMalformedJWT        = errors.New("secret is not a structurally valid JWT")

	ErrUnknownSecretFormat = errors.New("unknown secret format")
)
