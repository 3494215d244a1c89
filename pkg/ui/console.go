package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ReadSelection prompts for a choice from a list using huh.
func ReadSelection(options []string, title string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	var selected string
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// ReadInput prompts for a single line of text using huh. The placeholder is
// returned when the user submits an empty value.
func ReadInput(title, placeholder string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	if value == "" {
		return placeholder, nil
	}
	return value, nil
}
