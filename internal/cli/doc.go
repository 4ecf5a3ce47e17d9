// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cli implements the errno command. It handles flag parsing, error
// number lookups, and output handling.
package cli
