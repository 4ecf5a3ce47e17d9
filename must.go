// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package errx

import (
	"github.com/aibor/errx/exitcode"
)

// Must returns v if err is nil. Otherwise it emits the error on the default
// printer and terminates the process. The status is derived with
// [exitcode.From], so a plain error exits with 1 and an error wrapping an
// [exitcode.Error] exits with its code.
//
//	f := errx.Must(os.Open(path))
func Must[T any](v T, err error) T {
	Check(err)
	return v
}

// Check is [Must] without a value.
func Check(err error) {
	if err == nil {
		return
	}

	status, _ := exitcode.From(err)
	Errx(status, "%v", err)
}

// MustOK returns v if ok. Otherwise it emits the formatted message on the
// default printer and terminates the process with status 1. The caller
// supplies the message since a bare false does not carry one.
//
//	addr, ok := peers[name]
//	addr = errx.MustOK(addr, ok, "unknown peer: %s", name)
func MustOK[T any](v T, ok bool, format string, args ...any) T {
	if !ok {
		Errx(1, format, args...)
	}

	return v
}
