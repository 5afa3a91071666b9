package cli

import (
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// compassHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func compassHuhTheme() *huh.Theme {
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

// runGoalWizard collects the goal fields interactively.
func runGoalWizard() (mutate.AddGoalParams, error) {
	var p mutate.AddGoalParams
	timeframe := string(domain.TimeframeToday)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to work toward?").
				Placeholder("One small thing that matters").
				Value(&p.Title),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption(domain.CategorySchool, domain.CategorySchool),
					huh.NewOption(domain.CategoryHealth, domain.CategoryHealth),
					huh.NewOption(domain.CategoryMoney, domain.CategoryMoney),
					huh.NewOption(domain.CategoryLife, domain.CategoryLife),
				).
				Value(&p.Category),
			huh.NewSelect[string]().
				Title("Timeframe").
				Options(
					huh.NewOption(string(domain.TimeframeToday), string(domain.TimeframeToday)),
					huh.NewOption(string(domain.TimeframeWeek), string(domain.TimeframeWeek)),
					huh.NewOption(string(domain.TimeframeMonth), string(domain.TimeframeMonth)),
					huh.NewOption(string(domain.TimeframeLongTerm), string(domain.TimeframeLongTerm)),
				).
				Value(&timeframe),
			huh.NewInput().
				Title("Why does it matter? (optional)").
				Value(&p.Why),
		),
	).WithTheme(compassHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return mutate.AddGoalParams{}, err
	}
	p.Timeframe = domain.Timeframe(timeframe)
	return p, nil
}
