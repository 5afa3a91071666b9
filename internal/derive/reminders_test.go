package derive

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var remindNow = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

func remindState(daysBefore int) *domain.State {
	s := domain.DefaultState()
	s.Settings.RemindDaysBefore = daysBefore
	s.Steps = []domain.Step{
		{ID: "overdue", DueDate: "2026-03-09"},
		{ID: "fivedays", DueDate: "2026-03-15"},
	}
	return s
}

func TestUpcomingReminders_OverdueAndFarExcluded(t *testing.T) {
	s := remindState(1)

	upcoming := UpcomingReminders(s, remindNow)
	assert.Empty(t, upcoming, "overdue is excluded and five days out exceeds a 1-day window")
}

func TestUpcomingReminders_WidenedWindow(t *testing.T) {
	s := remindState(5)

	upcoming := UpcomingReminders(s, remindNow)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "fivedays", upcoming[0].ID, "overdue step stays excluded even with a wide window")
}

func TestUpcomingReminders_DisabledReturnsEmpty(t *testing.T) {
	s := remindState(5)
	s.Settings.RemindersEnabled = false

	assert.Empty(t, UpcomingReminders(s, remindNow))
}

func TestUpcomingReminders_SkipsCompletedAndDateless(t *testing.T) {
	s := domain.DefaultState()
	s.Settings.RemindDaysBefore = 3
	s.Steps = []domain.Step{
		{ID: "done", DueDate: "2026-03-11", Completed: true},
		{ID: "floating"},
		{ID: "due", DueDate: "2026-03-11"},
	}

	upcoming := UpcomingReminders(s, remindNow)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "due", upcoming[0].ID)
}

func TestUpcomingReminders_NegativeWindowClamped(t *testing.T) {
	s := domain.DefaultState()
	s.Settings.RemindDaysBefore = -4
	s.Steps = []domain.Step{{ID: "due", DueDate: "2026-03-10"}}

	upcoming := UpcomingReminders(s, remindNow)
	require.Len(t, upcoming, 1, "a negative window behaves like zero: due-today still reminds")
	assert.Equal(t, "due", upcoming[0].ID)
}
