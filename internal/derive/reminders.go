package derive

import (
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
)

// UpcomingReminders returns the incomplete, dated steps whose due date
// falls inside the reminder window: at least zero and at most
// RemindDaysBefore whole days away. Overdue steps are excluded; they show
// as overdue in the agenda but are not re-notified. Empty whenever
// reminders are disabled.
//
// The result is not capped here; display surfaces truncate it themselves.
func UpcomingReminders(s *domain.State, now time.Time) []domain.Step {
	if !s.Settings.RemindersEnabled {
		return nil
	}

	daysBefore := s.Settings.RemindDaysBefore
	if daysBefore < 0 {
		daysBefore = 0
	}

	var upcoming []domain.Step
	for _, st := range s.Steps {
		if st.Completed || !st.HasDueDate() {
			continue
		}
		diff, ok := dateutil.DaysUntil(st.DueDate, now)
		if !ok || diff < 0 {
			continue
		}
		if diff <= daysBefore {
			upcoming = append(upcoming, st)
		}
	}
	return upcoming
}
