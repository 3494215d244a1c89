package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders agent replies as terminal markdown via glamour,
// falling back to the raw text when rendering fails.
func RenderMarkdown(input string, wrap int) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if wrap <= 0 {
		wrap = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return input
	}

	out, err := renderer.Render(trimmed)
	if err != nil {
		return input
	}
	return strings.TrimRight(out, "\n")
}
