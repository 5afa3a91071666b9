package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/store"
)

// adminPassphrase is a cosmetic local gate for the flag toggles, not a
// security boundary.
const adminPassphrase = "compass270"

type accountService struct {
	store *store.Store
	now   func() time.Time
}

func NewAccountService(st *store.Store) AccountService {
	return &accountService{store: st, now: time.Now}
}

func (s *accountService) Current(ctx context.Context) domain.Account {
	return s.store.State().Account
}

func (s *accountService) Toggle(ctx context.Context, name, email string) (bool, error) {
	var on bool
	err := s.store.Update(ctx, func(state *domain.State) bool {
		on = mutate.ToggleAccount(state, name, email)
		return true
	})
	return on, err
}

func (s *accountService) Settings(ctx context.Context) domain.Settings {
	return s.store.State().Settings
}

func (s *accountService) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	return s.store.Update(ctx, func(state *domain.State) bool {
		return mutate.SetSettings(state, settings)
	})
}

func (s *accountService) Flags(ctx context.Context) domain.Flags {
	return s.store.State().Flags
}

func (s *accountService) UpdateFlags(ctx context.Context, flags domain.Flags) error {
	return s.store.Update(ctx, func(state *domain.State) bool {
		return mutate.SetFlags(state, flags)
	})
}

func (s *accountService) TouchActiveDay(ctx context.Context) error {
	today := dateutil.Today(s.now())
	return s.store.Update(ctx, func(state *domain.State) bool {
		return mutate.TouchActiveDay(state, today)
	})
}

func (s *accountService) VerifyAdminPass(pass string) bool {
	return subtle.ConstantTimeCompare([]byte(pass), []byte(adminPassphrase)) == 1
}
