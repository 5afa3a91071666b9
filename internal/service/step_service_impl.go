package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/store"
)

// ErrStepNotFound is returned when a step ID matches nothing.
var ErrStepNotFound = errors.New("step not found")

type stepService struct {
	store *store.Store
	now   func() time.Time
}

func NewStepService(st *store.Store) StepService {
	return &stepService{store: st, now: time.Now}
}

func (s *stepService) Add(ctx context.Context, p mutate.AddStepParams) (*domain.Step, error) {
	var step *domain.Step
	var addErr error
	err := s.store.Update(ctx, func(state *domain.State) bool {
		step, addErr = mutate.AddStep(state, p, s.now())
		return addErr == nil
	})
	if addErr != nil {
		return nil, addErr
	}
	return step, err
}

func (s *stepService) SetDone(ctx context.Context, stepID string, done bool) (*domain.Step, error) {
	var step *domain.Step
	err := s.store.Update(ctx, func(state *domain.State) bool {
		var changed bool
		step, changed = mutate.ToggleStep(state, stepID, done, s.now())
		return changed
	})
	if step == nil {
		return nil, ErrStepNotFound
	}
	return step, err
}
