// Package tui handles terminal presentation concerns for the CLI.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// The diagram output is wrapped in a fenced code block so it keeps its
// exact text while gaining framing and syntax styling.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// RenderDiagram wraps a Mermaid document in a fenced block and renders it
// for terminal display.
func RenderDiagram(diagram string) (string, error) {
	render := NewRenderer()
	return render("```mermaid\n" + diagram + "\n```\n")
}

// Interactive reports whether stdout is a color-capable terminal. Pretty
// rendering is skipped for pipes and dumb terminals so piped output stays
// machine-readable.
func Interactive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
