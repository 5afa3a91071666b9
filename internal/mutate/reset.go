package mutate

import (
	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
)

// WeeklyResetResult reports what a weekly reset did.
type WeeklyResetResult struct {
	Dropped   int // incomplete dateless steps removed
	Postponed int // incomplete dated steps pushed a week out
}

// WeeklyReset clears the week: incomplete steps without a due date are
// deleted outright, incomplete dated steps move forward seven calendar
// days, completed steps are retained untouched.
func WeeklyReset(s *domain.State) WeeklyResetResult {
	var res WeeklyResetResult
	kept := s.Steps[:0]
	for _, st := range s.Steps {
		if st.Completed {
			kept = append(kept, st)
			continue
		}
		if !st.HasDueDate() {
			res.Dropped++
			continue
		}
		st.DueDate = dateutil.AddDays(st.DueDate, 7)
		res.Postponed++
		kept = append(kept, st)
	}
	s.Steps = kept
	return res
}
