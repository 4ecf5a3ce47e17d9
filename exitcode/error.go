// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode carries process exit statuses through error values.
package exitcode

import (
	"errors"
	"fmt"
)

// Error is an exit status carried as an error value. Returning it from a
// command lets the caller pick the process exit status with [From] without
// printing a second diagnostic.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit status as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From derives a process exit status from the given error and reports
// whether the error carried one explicitly.
//
// A nil error maps to [ExOK]. An error wrapping an [Error] maps to that
// error's code. Any other error maps to 1, the generic failure status.
func From(err error) (int, bool) {
	if err == nil {
		return ExOK, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	return 1, false
}
