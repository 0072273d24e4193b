// Package terminal owns the styled output surface shared by the prompt
// engine and the scaffold workflow: the fixed five-style palette, the
// Output abstraction that isolates cursor-control redraws, and the one-time
// platform setup that lets ANSI sequences render.
package terminal
