package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/store"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithSteps(t *testing.T, titles ...string) *store.Store {
	t.Helper()
	st := testutil.NewTestStore(t, "2026-03-10")
	state := st.State()
	g := testutil.NewTestGoal("Get organized")
	state.Goals = append(state.Goals, g)
	for _, title := range titles {
		state.Steps = append(state.Steps, testutil.NewTestStep(g.ID, title))
	}
	return st
}

func newTodayService(st *store.Store) *todayService {
	return &todayService{store: st, now: func() time.Time { return fixedNow }}
}

func TestPrioritize_EnergyBudgets(t *testing.T) {
	tests := []struct {
		level domain.EnergyLevel
		want  int
	}{
		{domain.EnergyLow, 3},
		{domain.EnergyMedium, 5},
		{domain.EnergyHigh, 7},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			st := storeWithSteps(t, "a", "b", "c", "d", "e", "f", "g", "h")
			svc := newTodayService(st)

			n, err := svc.Prioritize(context.Background(), tt.level, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestPrioritize_LimitOverride(t *testing.T) {
	st := storeWithSteps(t, "a", "b", "c", "d")
	svc := newTodayService(st)

	n, err := svc.Prioritize(context.Background(), domain.EnergyHigh, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestShrink(t *testing.T) {
	st := storeWithSteps(t, "a", "b", "c", "d", "e")
	svc := newTodayService(st)

	kept, err := svc.Shrink(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, kept)
}

func TestWeeklyResetThroughService(t *testing.T) {
	st := storeWithSteps(t, "dateless")
	svc := newTodayService(st)

	res, err := svc.WeeklyReset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Dropped)
	assert.Empty(t, st.State().Steps)
}

func TestAgenda_IncompleteFirst(t *testing.T) {
	st := storeWithSteps(t, "open", "done")
	state := st.State()
	doneAt := fixedNow
	state.Steps[1].Completed = true
	state.Steps[1].CompletedAt = &doneAt
	svc := newTodayService(st)

	items := svc.Agenda(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "open", items[0].Step.Title)
	assert.Equal(t, "Get organized", items[0].GoalTitle)
	assert.Equal(t, "done", items[1].Step.Title)

	snap := svc.Snapshot(context.Background())
	assert.Equal(t, 1, snap.TotalGoals)
	assert.Equal(t, 1, snap.OpenTodaySteps)
	assert.Equal(t, 1, snap.CompletedSteps)
}
