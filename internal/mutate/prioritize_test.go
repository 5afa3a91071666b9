package mutate_test

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func todayIDs(s *domain.State) []string {
	var ids []string
	for _, st := range s.Steps {
		if st.IsToday && !st.Completed {
			ids = append(ids, st.Title)
		}
	}
	return ids
}

func TestPrioritize_DueFirstThenOriginalOrder(t *testing.T) {
	s, gid := stateWithGoal(t)
	s.Steps = append(s.Steps,
		testutil.NewTestStep(gid, "future", testutil.WithDueDate("2026-03-20"), testutil.WithToday(false)),
		testutil.NewTestStep(gid, "overdue", testutil.WithDueDate("2026-03-01"), testutil.WithToday(false)),
		testutil.NewTestStep(gid, "dateless", testutil.WithToday(false)),
		testutil.NewTestStep(gid, "duetoday", testutil.WithDueDate("2026-03-10"), testutil.WithToday(false)),
	)

	n := mutate.Prioritize(s, "2026-03-10", 3)
	assert.Equal(t, 3, n)
	// Due-now steps fill the budget first, so "dateless" loses out to the
	// future-dated step that came earlier in the list.
	assert.Equal(t, []string{"future", "overdue", "duetoday"}, todayIDs(s))
}

func TestPrioritize_NeverFlagsCompleted(t *testing.T) {
	s, gid := stateWithGoal(t)
	done := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	s.Steps = append(s.Steps,
		testutil.NewTestStep(gid, "done", testutil.WithCompleted(done), testutil.WithToday(false)),
		testutil.NewTestStep(gid, "open", testutil.WithToday(false)),
	)

	n := mutate.Prioritize(s, "2026-03-10", 5)
	assert.Equal(t, 1, n)
	assert.False(t, s.Steps[0].IsToday, "completed steps keep their flag untouched")
	assert.True(t, s.Steps[1].IsToday)
}

func TestPrioritize_ClearsExcessFlags(t *testing.T) {
	s, gid := stateWithGoal(t)
	for _, title := range []string{"a", "b", "c", "d"} {
		s.Steps = append(s.Steps, testutil.NewTestStep(gid, title))
	}

	n := mutate.Prioritize(s, "2026-03-10", 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, todayIDs(s))
}

func TestPrioritize_NegativeLimit(t *testing.T) {
	s, gid := stateWithGoal(t)
	s.Steps = append(s.Steps, testutil.NewTestStep(gid, "a"))

	assert.Zero(t, mutate.Prioritize(s, "2026-03-10", -1))
	assert.Empty(t, todayIDs(s))
}

func TestShrink_KeepsThreeEarliest(t *testing.T) {
	s, gid := stateWithGoal(t)
	s.Steps = append(s.Steps,
		testutil.NewTestStep(gid, "late", testutil.WithDueDate("2026-05-01")),
		testutil.NewTestStep(gid, "dateless"),
		testutil.NewTestStep(gid, "soon", testutil.WithDueDate("2026-03-11")),
		testutil.NewTestStep(gid, "mid", testutil.WithDueDate("2026-04-01")),
	)

	n := mutate.Shrink(s)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"late", "soon", "mid"}, todayIDs(s),
		"all three dated steps beat the dateless one")
	for _, st := range s.Steps {
		if st.Title == "dateless" {
			assert.False(t, st.IsToday)
		}
	}
}

func TestShrink_FewerThanKeepIsANoCut(t *testing.T) {
	s, gid := stateWithGoal(t)
	s.Steps = append(s.Steps,
		testutil.NewTestStep(gid, "a"),
		testutil.NewTestStep(gid, "b"),
	)

	assert.Equal(t, 2, mutate.Shrink(s))
	assert.Equal(t, []string{"a", "b"}, todayIDs(s))
}
