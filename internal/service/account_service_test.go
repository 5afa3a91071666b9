package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdminPass(t *testing.T) {
	svc := &accountService{store: testutil.NewTestStore(t, "2026-03-10"), now: time.Now}

	assert.True(t, svc.VerifyAdminPass("compass270"))
	assert.False(t, svc.VerifyAdminPass(""))
	assert.False(t, svc.VerifyAdminPass("compass271"))
}

func TestAccountToggleAndSettings(t *testing.T) {
	ctx := context.Background()
	svc := &accountService{store: testutil.NewTestStore(t, "2026-03-10"), now: time.Now}

	on, err := svc.Toggle(ctx, "Alex", "alex@example.com")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, "Alex", svc.Current(ctx).Name)

	require.NoError(t, svc.UpdateSettings(ctx, domain.Settings{RemindersEnabled: false, RemindDaysBefore: 2}))
	assert.Equal(t, 2, svc.Settings(ctx).RemindDaysBefore)

	require.NoError(t, svc.UpdateFlags(ctx, domain.Flags{ExperimentalEnabled: true}))
	assert.True(t, svc.Flags(ctx).ExperimentalEnabled)
}

func TestTouchActiveDayCountsOncePerDay(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t, "2026-03-10")
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	svc := &accountService{store: st, now: func() time.Time { return now }}

	require.NoError(t, svc.TouchActiveDay(ctx))
	require.NoError(t, svc.TouchActiveDay(ctx))
	assert.Equal(t, 1, st.State().Profile.ActiveDays)

	now = now.AddDate(0, 0, 1)
	require.NoError(t, svc.TouchActiveDay(ctx))
	assert.Equal(t, 2, st.State().Profile.ActiveDays)
}
