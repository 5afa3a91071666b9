package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive today view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

type dashboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Prioritize key.Binding
	Shrink     key.Binding
	Quit       key.Binding
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Prioritize, k.Shrink, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Prioritize: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prioritize")),
		Shrink:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shrink")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel is the bubbletea model for the interactive today view.
// Every action dispatches a mutation through the services and re-reads the
// agenda from the derivations; the model itself holds no task state.
type dashboardModel struct {
	app    *App
	keys   dashboardKeyMap
	help   help.Model
	items  []service.AgendaItem
	cursor int
	status string
}

func newDashboardModel(app *App) dashboardModel {
	m := dashboardModel{
		app:  app,
		keys: defaultDashboardKeys(),
		help: help.New(),
	}
	m.reload()
	return m
}

func (m *dashboardModel) reload() {
	m.items = m.app.Today.Agenda(context.Background())
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := context.Background()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.items) {
				item := m.items[m.cursor]
				_, err := m.app.Steps.SetDone(ctx, item.Step.ID, !item.Step.Completed)
				m.setStatus(err, "")
				m.reload()
			}

		case key.Matches(msg, m.keys.Prioritize):
			n, err := m.app.Today.Prioritize(ctx, domain.EnergyMedium, 0)
			m.setStatus(err, fmt.Sprintf("Put %d steps on today's list", n))
			m.reload()

		case key.Matches(msg, m.keys.Shrink):
			n, err := m.app.Today.Shrink(ctx)
			m.setStatus(err, fmt.Sprintf("Kept %d steps", n))
			m.reload()
		}
	}
	return m, nil
}

func (m *dashboardModel) setStatus(err error, ok string) {
	if err != nil {
		m.status = formatter.Warn(err.Error())
		return
	}
	m.status = formatter.Dim(ok)
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Today") + "\n\n")

	if len(m.items) == 0 {
		b.WriteString(formatter.Dim("No steps for today yet.") + "\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		title := formatter.StyleFg.Render(item.Step.Title)
		if item.Step.Completed {
			title = formatter.StyleDim.Strikethrough(true).Render(item.Step.Title)
		}
		meta := ""
		if item.Step.HasDueDate() {
			meta = "  " + formatter.Dim(formatter.DueLabel(item.DaysUntil))
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n",
			cursor, formatter.Checkbox(item.Step.Completed), title, meta))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return b.String()
}
