package derive

import (
	"math"
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
)

// CompletionStats aggregates how late steps tend to finish relative to
// their due dates. It is a behavioral signal for due-date padding, not a
// user-facing number.
type CompletionStats struct {
	AvgDelayDays float64
}

// GetCompletionStats averages the whole-day delay between each completed,
// dated step's due date and its completion (falling back to creation)
// time. Zero when no step qualifies.
func GetCompletionStats(s *domain.State) CompletionStats {
	var total float64
	var count int
	for _, st := range s.Steps {
		if !st.Completed || !st.HasDueDate() {
			continue
		}
		due, err := dateutil.Parse(st.DueDate, time.Local)
		if err != nil {
			continue
		}
		done := st.CreatedAt
		if st.CompletedAt != nil {
			done = *st.CompletedAt
		}
		total += math.Round(done.Sub(due).Hours() / 24)
		count++
	}
	if count == 0 {
		return CompletionStats{}
	}
	return CompletionStats{AvgDelayDays: total / float64(count)}
}

// InsightSummary is the statistics panel shown on the insights page.
type InsightSummary struct {
	TotalGoals            int
	TotalSteps            int
	StepsCompleted        int
	CompletionRatePercent int
	ActiveDays            int
	PersonalizationLevel  string
}

// Insights derives the summary statistics. The completion rate is defined
// as zero when there are no steps.
func Insights(s *domain.State) InsightSummary {
	completed := 0
	for _, st := range s.Steps {
		if st.Completed {
			completed++
		}
	}

	rate := 0
	if len(s.Steps) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(s.Steps)) * 100))
	}

	return InsightSummary{
		TotalGoals:            len(s.Goals),
		TotalSteps:            len(s.Steps),
		StepsCompleted:        completed,
		CompletionRatePercent: rate,
		ActiveDays:            s.Profile.ActiveDays,
		PersonalizationLevel:  PersonalizationLevel(s),
	}
}
