// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible message strings shared by the CLI,
// the upload relay and the service layer.
//
// Msg* constants describe failures. Notice* constants describe successful
// outcomes shown to the CLI user. Keeping them in one place ensures the CLI
// and the relay use the same wording.
package app

// Vault failures.
const (
	// MsgInvalidSecret is shown when the secret does not look like a JWT.
	MsgInvalidSecret = "invalid JWT format: JWT should start with 'eyJ'"

	// MsgEmptyPassphrase is shown when an empty passphrase is entered.
	MsgEmptyPassphrase = "passphrase must not be empty"

	// MsgPassphraseMismatch is shown when the confirmation differs from the
	// first passphrase entry.
	MsgPassphraseMismatch = "passphrases do not match"

	// MsgAuthFailed covers both a wrong passphrase and a tampered blob. The
	// two cases are indistinguishable on purpose.
	MsgAuthFailed = "wrong passphrase or corrupted data"

	// MsgCorruptedVault is shown when the stored token cannot be decoded.
	MsgCorruptedVault = "stored secret is corrupted; clear it and save again"

	// MsgEmptyVault is shown when a secret is requested but none is saved.
	MsgEmptyVault = "no secret saved yet"

	// MsgStorageUnavailable is shown when the vault backend fails.
	MsgStorageUnavailable = "vault storage is unavailable"

	// MsgStorageFull is shown when the backend refuses a write for lack of
	// space.
	MsgStorageFull = "vault storage is full"

	// MsgEncryptionFailed is shown when the cipher or random source fails.
	MsgEncryptionFailed = "encryption failed"

	// MsgPromptCancelled is shown when the user aborts an interactive prompt.
	MsgPromptCancelled = "cancelled"

	// MsgNoFile is shown when an upload is started without a file.
	MsgNoFile = "no file selected"

	// MsgTimeout is shown when an operation runs past its deadline.
	MsgTimeout = "operation timed out"

	// MsgUnknownCommand is shown for an unsupported CLI command.
	MsgUnknownCommand = "unknown command"

	// MsgInternalError is shown for any error without a dedicated message.
	MsgInternalError = "something went wrong"
)

// Upload relay responses.
const (
	MsgMissingFile          = "Missing file"
	MsgMissingJWT           = "Missing JWT token"
	MsgInvalidJWTFormat     = "Invalid JWT format"
	MsgPinataAuthFailed     = "Pinata authentication failed. Please check your JWT token."
	MsgPinataUploadFailed   = "Pinata upload failed"
	MsgPinataCIDNotFound    = "CID not found in Pinata response"
	MsgUnexpectedUploadFail = "Unexpected error during upload"
	MsgTooManyRequests      = "Too many requests"
)

// CLI outcomes.
const (
	NoticeSecretSaved    = "secret encrypted and saved"
	NoticeSecretCleared  = "secret cleared"
	NoticeConfigured     = "vault: configured"
	NoticeNotConfigured  = "vault: empty"
	NoticeUploaded       = "file uploaded to IPFS"
	NoticeCIDCopied      = "CID copied to clipboard"
	NoticeSecretOverride = "a secret is already saved and will be replaced"
)
