package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkorsten/foresight/internal/cli/formatter"
	"github.com/mkorsten/foresight/internal/domain"
)

// foresightHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func foresightHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePositiveFloat accepts a positive number.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// runScenarioWizard collects scenario changes interactively. It keeps asking
// for changes until the user declines to add another.
func runScenarioWizard(name string) ([]domain.ScenarioChange, string, bool, error) {
	var changes []domain.ScenarioChange
	var activate bool

	options := []huh.Option[domain.ChangeType]{
		huh.NewOption("Add engineers", domain.ChangeAddStaff),
		huh.NewOption("Cut scope (%)", domain.ChangeReduceScope),
		huh.NewOption("Raise velocity (%)", domain.ChangeIncreaseVelocity),
		huh.NewOption("Clear external blockers", domain.ChangeRemoveBlockers),
		huh.NewOption("Extend hours (%)", domain.ChangeExtendHours),
	}

	for {
		var changeType domain.ChangeType
		var valueStr string
		var more bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[domain.ChangeType]().
					Title("What changes?").
					Options(options...).
					Value(&changeType),
				huh.NewInput().
					Title("By how much?").
					Placeholder("2").
					Value(&valueStr).
					Validate(validatePositiveFloat),
				huh.NewConfirm().
					Title("Add another change?").
					Value(&more),
			),
		).WithTheme(foresightHuhTheme()).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return nil, "", false, err
		}

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, "", false, fmt.Errorf("invalid value %q: %w", valueStr, err)
		}
		changes = append(changes, domain.ScenarioChange{Type: changeType, Value: value})

		if !more {
			break
		}
	}

	var fields []huh.Field
	if name == "" {
		fields = append(fields, huh.NewInput().
			Title("Scenario name").
			Placeholder("add two engineers").
			Value(&name))
	}
	fields = append(fields, huh.NewConfirm().
		Title("Save as the active plan?").
		Value(&activate))

	closing := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(foresightHuhTheme()).
		WithShowHelp(false)
	if err := closing.Run(); err != nil {
		return nil, "", false, err
	}

	return changes, name, activate, nil
}
