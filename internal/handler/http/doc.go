// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the upload relay's HTTP API.
//
// POST /api/upload takes a multipart form with a "file" part and a "jwt"
// field (or an "Authorization: Bearer" header) and pins the file to IPFS
// through Pinata. GET /api/version reports the build. Request tracing,
// access logging, per-IP rate limiting and body size limits are handled by
// middleware before requests reach the service layer.
package http
