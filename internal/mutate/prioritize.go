package mutate

import (
	"sort"

	"github.com/alexanderramin/compass/internal/domain"
)

// shrinkKeep is how many steps survive an overwhelm shrink.
const shrinkKeep = 3

// Prioritize rebuilds the today list from the incomplete steps: dated
// steps due today or overdue come first in their original order, then the
// rest in their original order, truncated to limit. Selected steps get the
// today flag, every other incomplete step loses it. Completed steps keep
// whatever flag they had.
//
// today is the current date string; limit is the energy-derived budget.
// It returns how many steps were selected.
func Prioritize(s *domain.State, today string, limit int) int {
	if limit < 0 {
		limit = 0
	}

	var dueNow, others []string
	for _, st := range s.Steps {
		if st.Completed {
			continue
		}
		if st.HasDueDate() && st.DueDate <= today {
			dueNow = append(dueNow, st.ID)
		} else {
			others = append(others, st.ID)
		}
	}

	selected := append(dueNow, others...)
	if len(selected) > limit {
		selected = selected[:limit]
	}
	keep := make(map[string]bool, len(selected))
	for _, id := range selected {
		keep[id] = true
	}

	for i := range s.Steps {
		if s.Steps[i].Completed {
			continue
		}
		s.Steps[i].IsToday = keep[s.Steps[i].ID]
	}
	return len(selected)
}

// Shrink cuts the today list down to the few most urgent incomplete
// steps: dated ones sorted by earliest due date, then dateless ones in
// their original order, keeping the first three. Completed steps are left
// alone. It returns how many steps were kept.
func Shrink(s *domain.State) int {
	var dated, dateless []string
	for _, st := range s.Steps {
		if st.Completed {
			continue
		}
		if st.HasDueDate() {
			dated = append(dated, st.ID)
		} else {
			dateless = append(dateless, st.ID)
		}
	}

	// ISO date strings sort chronologically.
	sort.SliceStable(dated, func(i, j int) bool {
		return s.StepByID(dated[i]).DueDate < s.StepByID(dated[j]).DueDate
	})

	selected := append(dated, dateless...)
	if len(selected) > shrinkKeep {
		selected = selected[:shrinkKeep]
	}
	keep := make(map[string]bool, len(selected))
	for _, id := range selected {
		keep[id] = true
	}

	for i := range s.Steps {
		if s.Steps[i].Completed {
			continue
		}
		s.Steps[i].IsToday = keep[s.Steps[i].ID]
	}
	return len(selected)
}
