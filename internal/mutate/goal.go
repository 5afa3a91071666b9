// Package mutate implements the named state transitions. Every operation
// mutates the store-owned tree in place, takes the current time explicitly
// where it matters, and reports whether anything changed; persistence is
// the caller's job.
package mutate

import (
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

// AddGoalParams carries the user input for a new goal.
type AddGoalParams struct {
	Title     string
	Category  string
	Timeframe domain.Timeframe
	Why       string
}

// AddGoal appends a new goal. A blank title (after trimming) is rejected
// and leaves the state untouched.
func AddGoal(s *domain.State, p AddGoalParams, now time.Time) (*domain.Goal, bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, false
	}

	category := p.Category
	if category == "" {
		category = domain.CategoryLife
	}
	timeframe := p.Timeframe
	if timeframe == "" {
		timeframe = domain.TimeframeToday
	}

	s.Goals = append(s.Goals, domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  category,
		Timeframe: timeframe,
		Why:       strings.TrimSpace(p.Why),
		CreatedAt: now,
	})
	return &s.Goals[len(s.Goals)-1], true
}
