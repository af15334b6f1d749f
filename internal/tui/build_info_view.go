// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-jwt-vault/models"
)

// RenderBuildInfo renders the `version` window.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: jwtvault\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))

	return overlayBoxStyle.Render(b.String())
}

// RenderNotice renders a success message.
func RenderNotice(msg string) string {
	return noticeStyle.Render(msg)
}

// RenderError renders a failure message.
func RenderError(msg string) string {
	return errorStyle.Render("Error: " + msg)
}
