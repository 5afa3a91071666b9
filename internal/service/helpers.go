package service

import (
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
)

// buildAgendaItems joins steps with their goal titles and due-date
// distances.
func buildAgendaItems(s *domain.State, steps []domain.Step, now time.Time) []AgendaItem {
	items := make([]AgendaItem, 0, len(steps))
	for _, st := range steps {
		item := AgendaItem{Step: st}
		if goal := s.GoalByID(st.GoalID); goal != nil {
			item.GoalTitle = goal.Title
		}
		if diff, ok := dateutil.DaysUntil(st.DueDate, now); ok {
			item.DaysUntil = &diff
		}
		items = append(items, item)
	}
	return items
}
