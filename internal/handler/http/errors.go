// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errBodyTooLarge is reported when the multipart body exceeds
// [config.RelayServer.MaxUploadBytes].
var errBodyTooLarge = errors.New("request body too large")
