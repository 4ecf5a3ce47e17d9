// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package errno tracks the last operating system error of the process and
// resolves symbolic names of the known error numbers.
//
// Go surfaces operating system errors as error values instead of a process
// wide register, so the recording is explicit. A call site that wants its
// failure reflected in subsequent diagnostics passes it through [Record]:
//
//	if err := errno.Record(unix.Mkdir(path, 0o755)); err != nil {
//		errx.Err(1, "%s", path)
//	}
package errno

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

var last struct {
	sync.Mutex
	err error
}

// Record stores err as the last operating system error and returns it
// unchanged for call site chaining. Recording nil clears the cell.
func Record(err error) error {
	last.Lock()
	defer last.Unlock()

	last.err = err

	return err
}

// Last returns the most recently recorded error, or nil.
func Last() error {
	last.Lock()
	defer last.Unlock()

	return last.err
}

// Clear drops the recorded error.
func Clear() {
	last.Lock()
	defer last.Unlock()

	last.err = nil
}

// maxErrno bounds the table scans. Error numbers end well below this on all
// supported platforms.
const maxErrno = 4096

// Name returns the symbolic name of the given error number, like "ENOENT",
// or the empty string if it has none.
func Name(num syscall.Errno) string {
	return unix.ErrnoName(num)
}

// Lookup resolves a symbolic name like "ENOENT" to its error number and
// reports whether the name is known. The name must be upper case.
func Lookup(name string) (syscall.Errno, bool) {
	if name == "" {
		return 0, false
	}

	for num := syscall.Errno(1); num < maxErrno; num++ {
		if unix.ErrnoName(num) == name {
			return num, true
		}
	}

	return 0, false
}

// Walk calls fn for each known error number in ascending order.
func Walk(fn func(num syscall.Errno, name string)) {
	for num := syscall.Errno(1); num < maxErrno; num++ {
		if name := unix.ErrnoName(num); name != "" {
			fn(num, name)
		}
	}
}
