// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package errx_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/errx"
	"github.com/stretchr/testify/assert"
)

// restoreName keeps the process wide prefix stable across tests. The
// restored value equals the lazily resolved one as long as no test leaks a
// SetName call, so test order does not matter.
func restoreName(t *testing.T) {
	t.Helper()

	prev := errx.Name()
	t.Cleanup(func() {
		errx.SetName(prev)
	})
}

func TestName(t *testing.T) {
	restoreName(t)

	assert.Equal(t, filepath.Base(os.Args[0]), errx.Name())
}

func TestSetNameLastWriterWins(t *testing.T) {
	restoreName(t)

	errx.SetName("first")
	errx.SetName("second")

	assert.Equal(t, "second", errx.Name())
}

func TestSetNameIdempotent(t *testing.T) {
	restoreName(t)

	emit := func() string {
		var buf bytes.Buffer

		p := errx.Default()
		p.W = &buf
		p.Warnx("disk full")

		return buf.String()
	}

	errx.SetName("backup")
	first := emit()

	errx.SetName("backup")
	second := emit()

	assert.Equal(t, "backup: disk full\n", first)
	assert.Equal(t, first, second)
}

func TestDefault(t *testing.T) {
	restoreName(t)

	errx.SetName("backup")

	p := errx.Default()
	assert.Equal(t, "backup", p.Name)
	assert.Nil(t, p.W)
	assert.Nil(t, p.Errno)
	assert.Nil(t, p.Exit)
}
