package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the fixed set of display styles. It is built once at startup
// and shared read-only.
type Palette struct {
	info    lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	primary lipgloss.Style
	muted   lipgloss.Style
}

// NewPalette builds the palette for the given output. Colors are dropped
// when w is not a terminal.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	return &Palette{
		info:    r.NewStyle().Foreground(lipgloss.Color("14")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
		primary: r.NewStyle().Foreground(lipgloss.Color("15")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Info styles prompt markers and progress text.
func (p *Palette) Info(s string) string { return p.info.Render(s) }

// Success styles check marks and completion text.
func (p *Palette) Success(s string) string { return p.success.Render(s) }

// Error styles rejection and failure text.
func (p *Palette) Error(s string) string { return p.err.Render(s) }

// Primary styles questions and answers.
func (p *Palette) Primary(s string) string { return p.primary.Render(s) }

// Muted styles hints and separators.
func (p *Palette) Muted(s string) string { return p.muted.Render(s) }
