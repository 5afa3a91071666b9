package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/stretchr/testify/assert"
)

func days(d int) *int { return &d }

func TestDueLabel(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want string
	}{
		{"no date", nil, "no date"},
		{"overdue", days(-3), "3d overdue"},
		{"today", days(0), "today"},
		{"tomorrow", days(1), "in 1 day"},
		{"later", days(5), "in 5 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueLabel(tt.in))
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Goal", "Steps"},
		[][]string{
			{"Pass math", "3/5"},
			{"Save money", "0/2"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "Goal")
	assert.Contains(t, lines[2], "Pass math")
	assert.Contains(t, lines[3], "Save money")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatToday(t *testing.T) {
	agenda := []service.AgendaItem{
		{Step: domain.Step{Title: "Do homework", DueDate: "2026-03-12"}, GoalTitle: "Pass math", DaysUntil: days(2)},
		{Step: domain.Step{Title: "Run", Completed: true}, GoalTitle: "Get fit"},
	}
	reminders := []service.AgendaItem{
		{Step: domain.Step{Title: "Do homework", DueDate: "2026-03-12"}, GoalTitle: "Pass math", DaysUntil: days(2)},
	}

	out := FormatToday("Good morning.", "One small step is enough.",
		derive.Snapshot{TotalGoals: 2, OpenTodaySteps: 1, CompletedSteps: 1},
		agenda, reminders, []string{"Drink a full glass of water and stretch."})

	assert.Contains(t, out, "Good morning.")
	assert.Contains(t, out, "Do homework")
	assert.Contains(t, out, "Pass math")
	assert.Contains(t, out, "DUE SOON")
	assert.Contains(t, out, "in 2 days")
	assert.Contains(t, out, "Drink a full glass of water")
}

func TestFormatToday_EmptyAgenda(t *testing.T) {
	out := FormatToday("Good evening.", "", derive.Snapshot{}, nil, nil, nil)
	assert.Contains(t, out, "No steps for today yet")
	assert.NotContains(t, out, "DUE SOON")
	assert.NotContains(t, out, "SUGGESTIONS")
}
