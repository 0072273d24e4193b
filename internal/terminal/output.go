package terminal

import (
	"fmt"
	"io"
)

// eraseLine moves the cursor to the start of the previous line and clears it.
const eraseLine = "\033[F\033[K"

// Output is the write side of the terminal. Tests substitute a recorder and
// assert on the logical sequence of calls rather than raw escape bytes.
type Output interface {
	// Print writes text without a trailing newline.
	Print(text string)
	// Println writes text followed by a newline.
	Println(text string)
	// EraseLine removes the line the user just submitted.
	EraseLine()
}

// Console writes to an underlying stream, typically os.Stdout.
type Console struct {
	w io.Writer
}

// NewConsole wraps w as an Output.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Print(text string) {
	fmt.Fprint(c.w, text)
}

func (c *Console) Println(text string) {
	fmt.Fprintln(c.w, text)
}

func (c *Console) EraseLine() {
	fmt.Fprint(c.w, eraseLine)
}
