package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

// reportStyles colors check output. The renderer is bound to the output
// writer, so nothing is colored unless it is a terminal.
type reportStyles struct {
	location lipgloss.Style
	message  lipgloss.Style
	summary  lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		location: r.NewStyle().Bold(true),
		message:  r.NewStyle().Foreground(colorError),
		summary:  r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
