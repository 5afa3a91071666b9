package service

import (
	"context"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/store"
)

type goalService struct {
	store *store.Store
	now   func() time.Time
}

func NewGoalService(st *store.Store) GoalService {
	return &goalService{store: st, now: time.Now}
}

func (s *goalService) Add(ctx context.Context, p mutate.AddGoalParams) (*domain.Goal, error) {
	if p.Title == "" {
		return nil, mutate.ErrBlankTitle
	}

	var goal *domain.Goal
	err := s.store.Update(ctx, func(state *domain.State) bool {
		var ok bool
		goal, ok = mutate.AddGoal(state, p, s.now())
		return ok
	})
	if goal == nil {
		return nil, mutate.ErrBlankTitle
	}
	return goal, err
}

func (s *goalService) List(ctx context.Context) []GoalView {
	state := s.store.State()
	views := make([]GoalView, 0, len(state.Goals))
	for _, g := range state.Goals {
		view := GoalView{Goal: g, Steps: state.StepsForGoal(g.ID)}
		for _, st := range view.Steps {
			if st.Completed {
				view.DoneSteps++
			}
		}
		views = append(views, view)
	}
	return views
}

func (s *goalService) ApplyTemplate(ctx context.Context, name string) (*domain.Goal, error) {
	var goal *domain.Goal
	var applyErr error
	err := s.store.Update(ctx, func(state *domain.State) bool {
		goal, applyErr = mutate.ApplyTemplate(state, name, s.now())
		return applyErr == nil
	})
	if applyErr != nil {
		return nil, applyErr
	}
	return goal, err
}

func (s *goalService) TemplateNames() []string {
	return mutate.TemplateNames()
}
