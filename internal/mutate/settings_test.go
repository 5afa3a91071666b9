package mutate_test

import (
	"testing"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/stretchr/testify/assert"
)

func TestSetSettings(t *testing.T) {
	s := domain.DefaultState()

	changed := mutate.SetSettings(s, domain.Settings{RemindersEnabled: false, RemindDaysBefore: 3})
	assert.True(t, changed)
	assert.False(t, s.Settings.RemindersEnabled)
	assert.Equal(t, 3, s.Settings.RemindDaysBefore)

	// Same values again: no change reported.
	assert.False(t, mutate.SetSettings(s, domain.Settings{RemindersEnabled: false, RemindDaysBefore: 3}))

	// Negative windows clamp to zero.
	mutate.SetSettings(s, domain.Settings{RemindersEnabled: true, RemindDaysBefore: -5})
	assert.Zero(t, s.Settings.RemindDaysBefore)
}

func TestSetFlags(t *testing.T) {
	s := domain.DefaultState()
	flags := domain.Flags{PremiumEnabled: false, SuggestionsEnabled: false, ExperimentalEnabled: true}

	assert.True(t, mutate.SetFlags(s, flags))
	assert.Equal(t, flags, s.Flags)
	assert.False(t, mutate.SetFlags(s, flags))
}

func TestToggleAccount(t *testing.T) {
	s := domain.DefaultState()

	on := mutate.ToggleAccount(s, "  Alex ", "alex@example.com")
	assert.True(t, on)
	assert.Equal(t, "Alex", s.Account.Name)
	assert.Equal(t, "alex@example.com", s.Account.Email)

	// Turning off keeps the identity fields for when it comes back.
	off := mutate.ToggleAccount(s, "", "")
	assert.False(t, off)
	assert.False(t, s.Account.HasAccount)
	assert.Equal(t, "Alex", s.Account.Name)
}

func TestTouchActiveDay(t *testing.T) {
	s := domain.DefaultState()
	s.Profile = domain.Profile{}

	assert.True(t, mutate.TouchActiveDay(s, "2026-03-10"))
	assert.Equal(t, "2026-03-10", s.Profile.FirstUseDate)
	assert.Equal(t, 1, s.Profile.ActiveDays)

	// Same day twice still counts once.
	assert.False(t, mutate.TouchActiveDay(s, "2026-03-10"))
	assert.Equal(t, 1, s.Profile.ActiveDays)

	assert.True(t, mutate.TouchActiveDay(s, "2026-03-11"))
	assert.Equal(t, 2, s.Profile.ActiveDays)
	assert.Equal(t, "2026-03-10", s.Profile.FirstUseDate, "first-use date never moves")
}
