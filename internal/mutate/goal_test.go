package mutate_test

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGoal(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("defaults", func(t *testing.T) {
		s := domain.DefaultState()
		g, ok := mutate.AddGoal(s, mutate.AddGoalParams{Title: "  Pass math  "}, now)
		require.True(t, ok)
		assert.Equal(t, "Pass math", g.Title)
		assert.Equal(t, domain.CategoryLife, g.Category)
		assert.Equal(t, domain.TimeframeToday, g.Timeframe)
		assert.NotEmpty(t, g.ID)
		assert.Len(t, s.Goals, 1)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		s := domain.DefaultState()
		g, ok := mutate.AddGoal(s, mutate.AddGoalParams{Title: "   "}, now)
		assert.False(t, ok)
		assert.Nil(t, g)
		assert.Empty(t, s.Goals)
	})

	t.Run("explicit fields kept", func(t *testing.T) {
		s := domain.DefaultState()
		g, ok := mutate.AddGoal(s, mutate.AddGoalParams{
			Title:     "Save for a laptop",
			Category:  domain.CategoryMoney,
			Timeframe: domain.TimeframeLongTerm,
			Why:       "freedom",
		}, now)
		require.True(t, ok)
		assert.Equal(t, domain.CategoryMoney, g.Category)
		assert.Equal(t, domain.TimeframeLongTerm, g.Timeframe)
		assert.Equal(t, "freedom", g.Why)
	})
}
