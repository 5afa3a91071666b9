// Package store owns the canonical in-memory state tree and its
// load/merge/persist lifecycle.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/repository"
)

// Store holds the single live state tree. Mutation operations receive the
// tree by reference through Update; persistence happens after every
// mutation that reports a change.
type Store struct {
	repo  repository.StateRepo
	state *domain.State
}

// Open loads the persisted state through the repo, merging it with schema
// defaults. A missing or unparsable document falls back to a fresh default
// state; load never fails for bad data, only for repo errors other than
// not-found.
func Open(ctx context.Context, repo repository.StateRepo, today string) (*Store, error) {
	raw, err := repo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	st := parseState(raw, today)
	return &Store{repo: repo, state: st}, nil
}

// State returns the live state tree. Callers must not mutate it outside
// Update.
func (s *Store) State() *domain.State {
	return s.state
}

// Update applies fn to the state and persists when fn reports a change.
// The in-memory mutation is kept even when the write fails; the returned
// error is advisory.
func (s *Store) Update(ctx context.Context, fn func(*domain.State) bool) error {
	if !fn(s.state) {
		return nil
	}
	return s.Save(ctx)
}

// Save serializes the full state tree and writes it through the repo.
func (s *Store) Save(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := s.repo.Put(ctx, data); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// ExportJSON returns the full state tree as pretty-printed JSON for the
// backup export.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

// freshState is the default tree stamped for a first run.
func freshState(today string) *domain.State {
	st := domain.DefaultState()
	st.Profile.FirstUseDate = today
	st.Profile.LastActiveDate = today
	st.Profile.ActiveDays = 1
	return st
}

// parseState decodes a persisted document, back-filling each missing
// top-level key with a fresh copy of its default. The backfill is shallow
// on purpose: a present key is taken as-is, never deep-merged, so partial
// user data inside a sub-structure is preserved exactly. Any parse error
// is treated the same as an absent document.
func parseState(raw []byte, today string) *domain.State {
	if len(raw) == 0 {
		return freshState(today)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return freshState(today)
	}

	defaults := domain.DefaultState()
	merged := map[string]any{
		"goals":    defaults.Goals,
		"steps":    defaults.Steps,
		"settings": defaults.Settings,
		"flags":    defaults.Flags,
		"profile":  defaults.Profile,
		"account":  defaults.Account,
	}
	for key := range merged {
		if rawVal, ok := doc[key]; ok && string(rawVal) != "null" {
			merged[key] = rawVal
		}
	}

	buf, err := json.Marshal(merged)
	if err != nil {
		return freshState(today)
	}
	var st domain.State
	if err := json.Unmarshal(buf, &st); err != nil {
		return freshState(today)
	}

	if st.Goals == nil {
		st.Goals = []domain.Goal{}
	}
	if st.Steps == nil {
		st.Steps = []domain.Step{}
	}
	if st.Profile.FirstUseDate == "" {
		st.Profile.FirstUseDate = today
	}
	return &st
}
