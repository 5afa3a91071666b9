// Package derive computes read-only views from the state tree. Every
// function is pure: state in, view out, with the current time passed
// explicitly wherever it matters.
package derive

import (
	"sort"

	"github.com/alexanderramin/compass/internal/domain"
)

// TodayAgenda returns every step flagged for today, incomplete steps
// before completed ones. Ties keep their original relative order.
func TodayAgenda(s *domain.State) []domain.Step {
	var agenda []domain.Step
	for _, st := range s.Steps {
		if st.IsToday {
			agenda = append(agenda, st)
		}
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return !agenda[i].Completed && agenda[j].Completed
	})
	return agenda
}

// Snapshot holds the header counters shown above the agenda.
type Snapshot struct {
	TotalGoals     int
	OpenTodaySteps int
	CompletedSteps int
}

// Snapshot counts goals, open today-flagged steps, and completed steps.
func TakeSnapshot(s *domain.State) Snapshot {
	snap := Snapshot{TotalGoals: len(s.Goals)}
	for _, st := range s.Steps {
		if st.IsToday && !st.Completed {
			snap.OpenTodaySteps++
		}
		if st.Completed {
			snap.CompletedSteps++
		}
	}
	return snap
}
