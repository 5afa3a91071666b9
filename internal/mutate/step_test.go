package mutate_test

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithGoal(t *testing.T) (*domain.State, string) {
	t.Helper()
	s := domain.DefaultState()
	g := testutil.NewTestGoal("Get fit", testutil.WithTimeframe(domain.TimeframeWeek))
	s.Goals = append(s.Goals, g)
	return s, g.ID
}

func TestAddStep(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("no goals", func(t *testing.T) {
		s := domain.DefaultState()
		_, err := mutate.AddStep(s, mutate.AddStepParams{Title: "anything"}, now)
		assert.ErrorIs(t, err, mutate.ErrNoGoals)
	})

	t.Run("blank title", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		_, err := mutate.AddStep(s, mutate.AddStepParams{GoalID: gid, Title: "  "}, now)
		assert.ErrorIs(t, err, mutate.ErrBlankTitle)
		assert.Empty(t, s.Steps)
	})

	t.Run("smart due date when none given", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		st, err := mutate.AddStep(s, mutate.AddStepParams{GoalID: gid, Title: "Go for a run"}, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-12", st.DueDate, "two days out for a this-week goal")
		assert.True(t, st.IsToday)
		assert.False(t, st.Completed)
		assert.Empty(t, st.LastReminderDate)
	})

	t.Run("explicit due date kept", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		st, err := mutate.AddStep(s, mutate.AddStepParams{GoalID: gid, Title: "Sign up", DueDate: "2026-04-01"}, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-04-01", st.DueDate)
	})

	t.Run("unknown goal falls back to first", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		st, err := mutate.AddStep(s, mutate.AddStepParams{GoalID: "nope", Title: "Stretch"}, now)
		require.NoError(t, err)
		assert.Equal(t, gid, st.GoalID)
	})
}

func TestToggleStep(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	t.Run("stamps on first completion only", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		s.Steps = append(s.Steps, testutil.NewTestStep(gid, "Run"))
		id := s.Steps[0].ID

		st, changed := mutate.ToggleStep(s, id, true, now)
		require.True(t, changed)
		require.NotNil(t, st.CompletedAt)
		first := *st.CompletedAt
		assert.Equal(t, now, first)

		// Un-complete: the stamp is preserved.
		st, changed = mutate.ToggleStep(s, id, false, now.Add(time.Hour))
		require.True(t, changed)
		assert.False(t, st.Completed)
		require.NotNil(t, st.CompletedAt)
		assert.Equal(t, first, *st.CompletedAt)

		// Re-complete later: still the original stamp.
		st, changed = mutate.ToggleStep(s, id, true, now.Add(48*time.Hour))
		require.True(t, changed)
		assert.Equal(t, first, *st.CompletedAt)
	})

	t.Run("no-op when already in the target state", func(t *testing.T) {
		s, gid := stateWithGoal(t)
		s.Steps = append(s.Steps, testutil.NewTestStep(gid, "Run"))

		_, changed := mutate.ToggleStep(s, s.Steps[0].ID, false, now)
		assert.False(t, changed)
	})

	t.Run("unknown step", func(t *testing.T) {
		s := domain.DefaultState()
		st, changed := mutate.ToggleStep(s, "missing", true, now)
		assert.Nil(t, st)
		assert.False(t, changed)
	})
}

func TestMarkReminded(t *testing.T) {
	s, gid := stateWithGoal(t)
	s.Steps = append(s.Steps,
		testutil.NewTestStep(gid, "a"),
		testutil.NewTestStep(gid, "b"),
	)
	ids := []string{s.Steps[0].ID, s.Steps[1].ID}

	assert.True(t, mutate.MarkReminded(s, ids, "2026-03-10"))
	assert.Equal(t, "2026-03-10", s.Steps[0].LastReminderDate)
	assert.Equal(t, "2026-03-10", s.Steps[1].LastReminderDate)

	// Same day again: nothing changes.
	assert.False(t, mutate.MarkReminded(s, ids, "2026-03-10"))
}
