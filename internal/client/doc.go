// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the jwtvault command-line application.
//
// It parses the command name, collects secrets through a [Prompter] and
// drives the vault session and upload services, printing one outcome line
// per command.
package client
