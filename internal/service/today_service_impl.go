package service

import (
	"context"
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/store"
)

type todayService struct {
	store *store.Store
	now   func() time.Time
}

func NewTodayService(st *store.Store) TodayService {
	return &todayService{store: st, now: time.Now}
}

func (s *todayService) Agenda(ctx context.Context) []AgendaItem {
	state := s.store.State()
	return buildAgendaItems(state, derive.TodayAgenda(state), s.now())
}

func (s *todayService) Snapshot(ctx context.Context) derive.Snapshot {
	return derive.TakeSnapshot(s.store.State())
}

func (s *todayService) Prioritize(ctx context.Context, level domain.EnergyLevel, limitOverride int) (int, error) {
	limit := derive.EnergyBudget(level)
	if limitOverride > 0 {
		limit = limitOverride
	}
	today := dateutil.Today(s.now())

	var selected int
	err := s.store.Update(ctx, func(state *domain.State) bool {
		selected = mutate.Prioritize(state, today, limit)
		return true
	})
	return selected, err
}

func (s *todayService) Shrink(ctx context.Context) (int, error) {
	var kept int
	err := s.store.Update(ctx, func(state *domain.State) bool {
		kept = mutate.Shrink(state)
		return true
	})
	return kept, err
}

func (s *todayService) WeeklyReset(ctx context.Context) (mutate.WeeklyResetResult, error) {
	var res mutate.WeeklyResetResult
	err := s.store.Update(ctx, func(state *domain.State) bool {
		res = mutate.WeeklyReset(state)
		return true
	})
	return res, err
}
