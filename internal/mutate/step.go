package mutate

import (
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrNoGoals means a step cannot be created because no goal exists
	// to attach it to.
	ErrNoGoals = errors.New("create a goal first")
	// ErrBlankTitle rejects empty step or goal titles.
	ErrBlankTitle = errors.New("title must not be blank")
)

// AddStepParams carries the user input for a new step. An empty GoalID or
// one that matches no goal resolves to the first goal. An empty DueDate is
// filled in by the smart due-date estimate.
type AddStepParams struct {
	GoalID  string
	Title   string
	DueDate string
}

// AddStep appends a new step. New steps always start on the today list,
// incomplete and never notified.
func AddStep(s *domain.State, p AddStepParams, now time.Time) (*domain.Step, error) {
	if len(s.Goals) == 0 {
		return nil, ErrNoGoals
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrBlankTitle
	}

	goal := s.GoalByID(p.GoalID)
	if goal == nil {
		goal = &s.Goals[0]
	}

	due := p.DueDate
	if due == "" {
		due = derive.SmartDueDate(s, goal, now)
	}

	s.Steps = append(s.Steps, domain.Step{
		ID:        uuid.New().String(),
		GoalID:    goal.ID,
		Title:     title,
		DueDate:   due,
		IsToday:   true,
		CreatedAt: now,
	})
	return &s.Steps[len(s.Steps)-1], nil
}

// ToggleStep sets a step's completion. The completion timestamp is stamped
// only on the false-to-true transition and never cleared afterward, so
// un-completing and re-completing keeps the original stamp.
func ToggleStep(s *domain.State, stepID string, completed bool, now time.Time) (*domain.Step, bool) {
	step := s.StepByID(stepID)
	if step == nil {
		return nil, false
	}
	if step.Completed == completed {
		return step, false
	}

	step.Completed = completed
	if completed && step.CompletedAt == nil {
		t := now
		step.CompletedAt = &t
	}
	return step, true
}

// MarkReminded stamps today as the last reminder day on the given steps so
// the same step is not notified twice in one day.
func MarkReminded(s *domain.State, stepIDs []string, today string) bool {
	changed := false
	for _, id := range stepIDs {
		if step := s.StepByID(id); step != nil && step.LastReminderDate != today {
			step.LastReminderDate = today
			changed = true
		}
	}
	return changed
}
