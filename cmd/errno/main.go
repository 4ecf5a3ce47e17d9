// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// The errno command resolves operating system error names and numbers and
// prints their descriptions, like:
//
//	$ errno ENOENT
//	ENOENT 2 no such file or directory
package main

import (
	"os"
	"path/filepath"

	"github.com/aibor/errx/internal/cli"
)

func main() {
	cfg := cli.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	os.Exit(cli.Run(filepath.Base(os.Args[0]), os.Args[1:], cfg))
}
