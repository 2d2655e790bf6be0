package cmd

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter collects interactive operator input. Destructive confirmation
// is an explicit boolean result here rather than string comparison at the
// call sites.
type Prompter interface {
	// Input prompts for a free-form value.
	Input(label string) (string, error)

	// Confirm asks for explicit confirmation of a destructive action.
	// Anything but a literal "yes" declines; declining is not an error.
	Confirm(label string) (bool, error)

	// SelectIndex presents a numbered menu and returns the chosen index.
	SelectIndex(label string, items []string) (int, error)
}

// PromptUIPrompter implements Prompter on top of promptui.
type PromptUIPrompter struct{}

// NewPromptUIPrompter creates a terminal-backed prompter.
func NewPromptUIPrompter() *PromptUIPrompter {
	return &PromptUIPrompter{}
}

// Input prompts for a free-form value.
func (p *PromptUIPrompter) Input(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Confirm asks for explicit confirmation of a destructive action.
func (p *PromptUIPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{Label: label + ` (type "yes" to confirm)`}
	value, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(value) == "yes", nil
}

// SelectIndex presents a numbered menu and returns the chosen index.
func (p *PromptUIPrompter) SelectIndex(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}
	index, _, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return index, nil
}
