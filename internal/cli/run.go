// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/aibor/errx"
	"github.com/aibor/errx/errno"
	"github.com/aibor/errx/exitcode"
)

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

type flags struct {
	list   bool
	search string
}

func parseArgs(name string, args []string, output io.Writer) (*flags, []string, error) {
	f := &flags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVarP(
		&f.list,
		"list",
		"l",
		false,
		"list all known error numbers",
	)

	fs.StringVarP(
		&f.search,
		"search",
		"s",
		"",
		"list error numbers whose description contains the given word",
	)

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags...] [name-or-number...]\n", name)
		fmt.Fprint(output, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// Run is the main entry point for the errno command. It returns the process
// exit status.
func Run(name string, args []string, cfg IO) int {
	printer := &errx.Printer{Name: name, W: cfg.Stderr}

	flags, operands, err := parseArgs(name, args, cfg.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitcode.ExOK
		}

		// parseArgs already prints errors.
		return exitcode.ExUsage
	}

	switch {
	case flags.list:
		list(cfg.Stdout)
		return exitcode.ExOK
	case flags.search != "":
		search(cfg.Stdout, flags.search)
		return exitcode.ExOK
	case len(operands) == 0:
		printer.Warnx("missing name or number operand")
		return exitcode.ExUsage
	}

	status := exitcode.ExOK

	for _, operand := range operands {
		num, ok := resolve(operand)
		if !ok {
			printer.Warnx("unknown error: %s", operand)
			status = 1

			continue
		}

		describe(cfg.Stdout, num, errno.Name(num))
	}

	return status
}

// resolve accepts a symbolic name in any case or a decimal error number.
func resolve(operand string) (syscall.Errno, bool) {
	if n, err := strconv.Atoi(operand); err == nil {
		num := syscall.Errno(n)
		if n <= 0 || errno.Name(num) == "" {
			return 0, false
		}

		return num, true
	}

	return errno.Lookup(strings.ToUpper(operand))
}

func describe(w io.Writer, num syscall.Errno, name string) {
	fmt.Fprintf(w, "%s %d %s\n", name, int(num), num.Error())
}

func list(w io.Writer) {
	errno.Walk(func(num syscall.Errno, name string) {
		describe(w, num, name)
	})
}

func search(w io.Writer, word string) {
	word = strings.ToLower(word)

	errno.Walk(func(num syscall.Errno, name string) {
		if strings.Contains(strings.ToLower(num.Error()), word) {
			describe(w, num, name)
		}
	})
}
