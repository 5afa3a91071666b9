package service

import (
	"context"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/store"
)

type insightService struct {
	store *store.Store
}

func NewInsightService(st *store.Store) InsightService {
	return &insightService{store: st}
}

func (s *insightService) Summary(ctx context.Context) derive.InsightSummary {
	return derive.Insights(s.store.State())
}

func (s *insightService) Suggestions(ctx context.Context) []string {
	return derive.Suggestions(s.store.State())
}

func (s *insightService) PersonalIdeas(ctx context.Context) ([]string, string) {
	return derive.PersonalIdeas(s.store.State())
}
