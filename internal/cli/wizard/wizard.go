// Package wizard provides the interactive prompts used when required
// scaffolding values are missing and stdin is a terminal.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Result holds the values collected by the wizard.
type Result struct {
	Name        string
	Description string
}

// Run prompts for any missing value among name and description. Values
// already provided are kept and their questions skipped. Each question runs
// as its own huh.Form, matching the sequential one-question-per-screen flow.
func Run(name, description string) (*Result, error) {
	result := &Result{Name: name, Description: description}

	if strings.TrimSpace(result.Name) == "" {
		if err := runInput("Project name", "Used for the project directory and root namespace.", &result.Name); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(result.Description) == "" {
		if err := runInput("Project description", "A short sentence embedded in build properties and docs.", &result.Description); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// runInput runs a single required-input form.
func runInput(title, description string, value *string) error {
	field := huh.NewInput().
		Title(title).
		Description(description).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		}).
		Value(value)

	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
