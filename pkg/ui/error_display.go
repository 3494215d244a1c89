package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	indentStyle = lipgloss.NewStyle().
			PaddingLeft(3)

	reasonTextStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	rawErrorTitleStyle = lipgloss.NewStyle().
				Foreground(colorGrey).
				Bold(true)

	rawErrorTextStyle = lipgloss.NewStyle().
				Foreground(colorGrey)
)

// RenderErrorBox renders an inline error banner for plain-console output,
// wrapped to the terminal width.
func RenderErrorBox(title, reason, originalError string) string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	contentWidth := width - 5

	header := indentStyle.Render(errorHeaderStyle.Render(fmt.Sprintf("✕ %s", title)))

	var bodyBlocks []string
	if reason != "" {
		bodyBlocks = append(bodyBlocks, reasonTextStyle.Width(contentWidth).Render(reason))
	}
	if originalError != "" {
		if len(bodyBlocks) > 0 {
			bodyBlocks = append(bodyBlocks, "")
		}
		bodyBlocks = append(bodyBlocks,
			rawErrorTitleStyle.Render("Raw Error:"),
			rawErrorTextStyle.Width(contentWidth).Render(strings.TrimSpace(originalError)),
		)
	}

	body := indentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, bodyBlocks...))
	return fmt.Sprintf("\n%s\n%s\n", header, body)
}

// RenderSessionErrorBox is the banner shown when session creation fails.
func RenderSessionErrorBox(err error) string {
	return RenderErrorBox(
		"Could not create a session",
		"The agent service did not accept the session request. The previous conversation, if any, is untouched.",
		err.Error(),
	)
}

// RenderRelayErrorBox is the banner shown when relaying a message fails. The
// conversation keeps going; a fallback reply has already been recorded.
func RenderRelayErrorBox(err error) string {
	return RenderErrorBox(
		"Message delivery failed",
		"The agent service could not be reached or returned an error. You can keep typing.",
		err.Error(),
	)
}
