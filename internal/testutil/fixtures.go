package testutil

import (
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithCategory(cat string) GoalOption {
	return func(g *domain.Goal) {
		g.Category = cat
	}
}

func WithTimeframe(tf domain.Timeframe) GoalOption {
	return func(g *domain.Goal) {
		g.Timeframe = tf
	}
}

// NewTestGoal builds a goal with sensible defaults.
func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  domain.CategoryLife,
		Timeframe: domain.TimeframeWeek,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Step options
type StepOption func(*domain.Step)

func WithDueDate(date string) StepOption {
	return func(s *domain.Step) {
		s.DueDate = date
	}
}

func WithCompleted(at time.Time) StepOption {
	return func(s *domain.Step) {
		s.Completed = true
		t := at
		s.CompletedAt = &t
	}
}

func WithToday(isToday bool) StepOption {
	return func(s *domain.Step) {
		s.IsToday = isToday
	}
}

func WithCreatedAt(at time.Time) StepOption {
	return func(s *domain.Step) {
		s.CreatedAt = at
	}
}

// NewTestStep builds a step with sensible defaults: today-flagged,
// incomplete, no due date.
func NewTestStep(goalID, title string, opts ...StepOption) domain.Step {
	s := domain.Step{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     title,
		IsToday:   true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
