package derive

import (
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
)

// lateFinisherBuffer is added to every estimate once the user's average
// completion delay exceeds lateFinisherThreshold days.
const (
	lateFinisherThreshold = 2.0
	lateFinisherBuffer    = 3
)

// timeframeOffsetDays maps a goal timeframe to its base due-date offset.
func timeframeOffsetDays(tf domain.Timeframe) int {
	switch tf {
	case domain.TimeframeToday:
		return 0
	case domain.TimeframeWeek:
		return 2
	case domain.TimeframeMonth:
		return 8
	case domain.TimeframeLongTerm:
		return 30
	default:
		return 3
	}
}

// SmartDueDate picks a due date for a new step from its goal's timeframe.
// When personalization is active and the user habitually finishes late,
// the estimate gets a few extra buffer days.
func SmartDueDate(s *domain.State, goal *domain.Goal, now time.Time) string {
	addDays := timeframeOffsetDays(goal.Timeframe)

	if s.Account.HasAccount {
		if stats := GetCompletionStats(s); stats.AvgDelayDays > lateFinisherThreshold {
			addDays += lateFinisherBuffer
		}
	}

	return now.AddDate(0, 0, addDays).Format(dateutil.Layout)
}
