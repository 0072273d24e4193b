//go:build windows

package terminal

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// Init enables virtual terminal processing on the console behind f so ANSI
// sequences are interpreted. Redirected output needs no setup.
func Init(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return errors.WithStack(&InitError{Op: "reading console mode", Err: err})
	}

	mode |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(h, mode); err != nil {
		return errors.WithHint(
			errors.WithStack(&InitError{Op: "enabling virtual terminal processing", Err: err}),
			"use Windows 10 or later, or a terminal that supports ANSI escape sequences",
		)
	}
	return nil
}
