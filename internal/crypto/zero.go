// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Zero overwrites b with zeros. Used on keys and decrypted buffers as soon
// as the call that needed them is done.
func Zero(b []byte) {
	clear(b)
}
