package mutate

import (
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
)

// SetSettings replaces the reminder settings. A negative remind window is
// clamped to zero.
func SetSettings(s *domain.State, settings domain.Settings) bool {
	if settings.RemindDaysBefore < 0 {
		settings.RemindDaysBefore = 0
	}
	if s.Settings == settings {
		return false
	}
	s.Settings = settings
	return true
}

// SetFlags replaces the administrative flags.
func SetFlags(s *domain.State, flags domain.Flags) bool {
	if s.Flags == flags {
		return false
	}
	s.Flags = flags
	return true
}

// ToggleAccount flips account mode. Turning it on records the given name
// and email for display; turning it off keeps them but stops all learning.
// It returns the new account state.
func ToggleAccount(s *domain.State, name, email string) bool {
	s.Account.HasAccount = !s.Account.HasAccount
	if s.Account.HasAccount {
		s.Account.Name = strings.TrimSpace(name)
		s.Account.Email = strings.TrimSpace(email)
	}
	return s.Account.HasAccount
}

// TouchActiveDay counts today as an active day, at most once per calendar
// day. It also backfills the first-use date if it was never set.
func TouchActiveDay(s *domain.State, today string) bool {
	changed := false
	if s.Profile.FirstUseDate == "" {
		s.Profile.FirstUseDate = today
		changed = true
	}
	if s.Profile.LastActiveDate != today {
		s.Profile.LastActiveDate = today
		s.Profile.ActiveDays++
		changed = true
	}
	return changed
}
