package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNonInteractive is returned by prompts when non-interactive mode is on
var ErrNonInteractive = errors.New("interactive prompts are disabled")

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return false, ErrNonInteractive
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptSelect prompts the user to select from a list
func (u *UI) PromptSelect(prompt string, options []string) (int, error) {
	if u.nonInteractive {
		return -1, ErrNonInteractive
	}
	if len(options) == 0 {
		return -1, fmt.Errorf("nothing to select")
	}

	var selected int
	p := &survey.Select{
		Message: prompt,
		Options: options,
	}

	// Asking into an int stores the selected index
	if err := survey.AskOne(p, &selected); err != nil {
		return -1, err
	}
	return selected, nil
}
