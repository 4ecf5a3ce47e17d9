// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package errx

import (
	"fmt"
	"io"
	"os"

	"github.com/aibor/errx/errno"
)

// OS hooks used by printers with unset fields. Tests replace these to
// intercept process termination and output at the call site.
var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

// Printer composes and emits diagnostics for a single program.
//
// The zero value writes unprefixed messages to [os.Stderr], reads the last
// operating system error from [errno.Last] and terminates through
// [os.Exit]. All fields are optional.
type Printer struct {
	// Name is prepended to every message. Empty means no prefix.
	Name string

	// W is the emission sink. Nil means os.Stderr.
	W io.Writer

	// Errno supplies the last operating system error for [Printer.Warn]
	// and [Printer.Err]. Nil means [errno.Last]. A nil error means
	// nothing is recorded and no description is appended.
	Errno func() error

	// Exit terminates the process for [Printer.Err] and [Printer.Errx].
	// Nil means [os.Exit]. The function must not return.
	Exit func(status int)
}

func (p *Printer) writer() io.Writer {
	if p.W != nil {
		return p.W
	}

	return stderr
}

func (p *Printer) lastError() error {
	if p.Errno != nil {
		return p.Errno()
	}

	return errno.Last()
}

func (p *Printer) exit(status int) {
	if p.Exit != nil {
		p.Exit(status)
		return
	}

	osExit(status)
}

// compose joins the non-empty parts with ": ". A part that is empty is
// dropped together with its separator, so a message never starts or ends
// with a bare colon.
func compose(parts ...string) string {
	var msg string

	for _, part := range parts {
		if part == "" {
			continue
		}

		if msg != "" {
			msg += ": "
		}

		msg += part
	}

	return msg
}

// Sprintf returns the composed diagnostic without emitting it: the printer
// name and the formatted message, joined with ": ".
func (p *Printer) Sprintf(format string, args ...any) string {
	return compose(p.Name, fmt.Sprintf(format, args...))
}

// SprintfErr is like [Printer.Sprintf] but appends the description of the
// last recorded operating system error. The error is captured before the
// message is formatted, so formatting an argument cannot clobber it.
func (p *Printer) SprintfErr(format string, args ...any) string {
	var desc string
	if err := p.lastError(); err != nil {
		desc = err.Error()
	}

	return compose(p.Name, fmt.Sprintf(format, args...), desc)
}

// Fprintf emits the composed diagnostic with a trailing newline in a single
// write. The write result is returned as is; a failed write is not retried.
func (p *Printer) Fprintf(format string, args ...any) (int, error) {
	return io.WriteString(p.writer(), p.Sprintf(format, args...)+"\n")
}

// FprintfErr is like [Printer.Fprintf] with the last operating system error
// appended.
func (p *Printer) FprintfErr(format string, args ...any) (int, error) {
	return io.WriteString(p.writer(), p.SprintfErr(format, args...)+"\n")
}

// Warnx emits the formatted message. A write failure is discarded since
// there is no safer stream to report it to.
func (p *Printer) Warnx(format string, args ...any) {
	_, _ = p.Fprintf(format, args...)
}

// Warn is like [Printer.Warnx] with the last operating system error
// appended.
func (p *Printer) Warn(format string, args ...any) {
	_, _ = p.FprintfErr(format, args...)
}

// Errx emits the formatted message and terminates the process with the
// given status. The status is passed through verbatim, 0 included. The
// call does not return.
func (p *Printer) Errx(status int, format string, args ...any) {
	p.Warnx(format, args...)
	p.exit(status)
}

// Err is like [Printer.Errx] with the last operating system error appended.
func (p *Printer) Err(status int, format string, args ...any) {
	p.Warn(format, args...)
	p.exit(status)
}
