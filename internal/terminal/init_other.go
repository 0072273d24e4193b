//go:build !windows

package terminal

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// Init checks that f is usable for output. Unix terminals interpret ANSI
// sequences natively.
func Init(f *os.File) error {
	if term.IsTerminal(int(f.Fd())) {
		return nil
	}
	if _, err := f.Stat(); err != nil {
		return errors.WithStack(&InitError{Op: "inspecting output stream", Err: err})
	}
	return nil
}
