// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package errx provides BSD err(3) and warn(3) style diagnostics for
// command line programs.
//
// Diagnostics are written to the standard error stream, prefixed with the
// program name and terminated with a newline:
//
//	backup: /etc/backup.conf: no such file or directory
//
// The four basic operations mirror the BSD family. [Warnx] and [Errx] emit
// the formatted message as is. [Warn] and [Err] append the description of
// the last recorded operating system error (see the errno package). [Errx]
// and [Err] additionally terminate the process with a caller supplied exit
// status, used verbatim:
//
//	f, err := os.Open(path)
//	if err != nil {
//		errx.Errx(1, "%s: %v", path, err)
//	}
//
// The package level functions operate on a process wide default [Printer]
// whose prefix is resolved once from the process argument list. Programs
// that need full control, most notably tests, construct their own [Printer]
// with an explicit sink, errno source and exit hook.
//
// Formatting mistakes follow the fmt conventions and render inline in the
// emitted message, like "%!d(string=x)". They are never swallowed.
package errx
