package mutate

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/google/uuid"
)

// templatePack is a canned goal plus its starter steps.
type templatePack struct {
	goalTitle string
	category  string
	timeframe domain.Timeframe
	steps     []string
}

var templatePacks = map[string]templatePack{
	"school": {
		goalTitle: "School Reset",
		category:  domain.CategorySchool,
		timeframe: domain.TimeframeWeek,
		steps: []string{
			"Write out all assignments due this week.",
			"Spend 10 minutes on the hardest class first.",
			"Pack bag or materials for tomorrow.",
		},
	},
	"room": {
		goalTitle: "Room Reset",
		category:  domain.CategoryLife,
		timeframe: domain.TimeframeWeek,
		steps: []string{
			"Clear just the floor around your bed.",
			"Make a small donate-or-toss bag.",
			"Wipe one surface that annoys you most.",
		},
	},
	"money": {
		goalTitle: "Money Starter",
		category:  domain.CategoryMoney,
		timeframe: domain.TimeframeMonth,
		steps: []string{
			"Check your main balance without judging.",
			"List your 3 biggest expenses this month.",
			"Move $5 to savings if you can.",
		},
	},
	"mental": {
		goalTitle: "Mental Clean-Up",
		category:  domain.CategoryLife,
		timeframe: domain.TimeframeWeek,
		steps: []string{
			"Write down everything that's on your mind.",
			"Pick one thing you can let go of this week.",
			"Text one person you trust just to say hi.",
		},
	},
	"health": {
		goalTitle: "Health Basics",
		category:  domain.CategoryHealth,
		timeframe: domain.TimeframeMonth,
		steps: []string{
			"Drink a full glass of water.",
			"Plan your next bedtime & wake-up time.",
			"Do a 5 minute walk or stretch.",
		},
	},
	"motivation": {
		goalTitle: "Motivation Restart",
		category:  domain.CategoryLife,
		timeframe: domain.TimeframeWeek,
		steps: []string{
			"Remember one time you got through something hard.",
			"Write one sentence future-you would say to you today.",
			"Choose a tiny win you can get in under 5 minutes.",
		},
	},
}

// TemplateNames lists the available template packs, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templatePacks))
	for name := range templatePacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTemplate adds a template pack: one goal and its starter steps, each
// step due-dated by the smart estimate and flagged for today.
func ApplyTemplate(s *domain.State, name string, now time.Time) (*domain.Goal, error) {
	pack, ok := templatePacks[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	s.Goals = append(s.Goals, domain.Goal{
		ID:        uuid.New().String(),
		Title:     pack.goalTitle,
		Category:  pack.category,
		Timeframe: pack.timeframe,
		Why:       "Template pack added to gently reset this area.",
		CreatedAt: now,
	})
	goal := &s.Goals[len(s.Goals)-1]

	for _, text := range pack.steps {
		s.Steps = append(s.Steps, domain.Step{
			ID:        uuid.New().String(),
			GoalID:    goal.ID,
			Title:     text,
			DueDate:   derive.SmartDueDate(s, goal, now),
			IsToday:   true,
			CreatedAt: now,
		})
	}
	return goal, nil
}
