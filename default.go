// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package errx

import (
	"os"
	"path/filepath"
	"sync"
)

// FallbackName is the prefix used if the process argument list is empty and
// no name was set explicitly.
const FallbackName = "Error"

var defaultName struct {
	sync.Mutex
	name string
	set  bool
}

var argsName = sync.OnceValue(func() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	return filepath.Base(os.Args[0])
})

// SetName overrides the prefix used by the package level functions. It is
// meant to be called once during startup. Concurrent callers are
// serialized, the last one wins.
func SetName(name string) {
	defaultName.Lock()
	defer defaultName.Unlock()

	defaultName.name = name
	defaultName.set = true
}

// Name returns the prefix used by the package level functions. If it was
// never set it is resolved once from the base name of the first process
// argument, falling back to [FallbackName].
func Name() string {
	defaultName.Lock()
	defer defaultName.Unlock()

	if defaultName.set {
		return defaultName.name
	}

	return argsName()
}

// Default returns a new [Printer] carrying the process wide prefix and the
// default sink, errno source and exit hook.
func Default() *Printer {
	return &Printer{Name: Name()}
}

// Warnx emits the formatted message on the default printer.
func Warnx(format string, args ...any) {
	Default().Warnx(format, args...)
}

// Warn emits the formatted message with the last operating system error
// appended on the default printer.
func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

// Errx emits the formatted message on the default printer and terminates
// the process with the given status.
func Errx(status int, format string, args ...any) {
	Default().Errx(status, format, args...)
}

// Err is like [Errx] with the last operating system error appended.
func Err(status int, format string, args ...any) {
	Default().Err(status, format, args...)
}
