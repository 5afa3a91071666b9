package service

import (
	"context"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
)

// AgendaItem is a step joined with its goal context for display.
type AgendaItem struct {
	Step      domain.Step
	GoalTitle string
	// DaysUntil is nil when the step has no (parsable) due date.
	DaysUntil *int
}

// GoalView is a goal with its step rollup.
type GoalView struct {
	Goal      domain.Goal
	Steps     []domain.Step
	DoneSteps int
}

type GoalService interface {
	Add(ctx context.Context, p mutate.AddGoalParams) (*domain.Goal, error)
	List(ctx context.Context) []GoalView
	ApplyTemplate(ctx context.Context, name string) (*domain.Goal, error)
	TemplateNames() []string
}

type StepService interface {
	Add(ctx context.Context, p mutate.AddStepParams) (*domain.Step, error)
	SetDone(ctx context.Context, stepID string, done bool) (*domain.Step, error)
}

type TodayService interface {
	Agenda(ctx context.Context) []AgendaItem
	Snapshot(ctx context.Context) derive.Snapshot
	Prioritize(ctx context.Context, level domain.EnergyLevel, limitOverride int) (int, error)
	Shrink(ctx context.Context) (int, error)
	WeeklyReset(ctx context.Context) (mutate.WeeklyResetResult, error)
}

type ReminderService interface {
	Upcoming(ctx context.Context) []AgendaItem
	// NotifyDueSoon fires at most one desktop notification for steps in
	// the reminder window not yet notified today, then stamps them.
	NotifyDueSoon(ctx context.Context) (bool, error)
}

type InsightService interface {
	Summary(ctx context.Context) derive.InsightSummary
	Suggestions(ctx context.Context) []string
	PersonalIdeas(ctx context.Context) (ideas []string, advisory string)
}

type AccountService interface {
	Current(ctx context.Context) domain.Account
	Toggle(ctx context.Context, name, email string) (bool, error)
	Settings(ctx context.Context) domain.Settings
	UpdateSettings(ctx context.Context, s domain.Settings) error
	Flags(ctx context.Context) domain.Flags
	UpdateFlags(ctx context.Context, f domain.Flags) error
	TouchActiveDay(ctx context.Context) error
	VerifyAdminPass(pass string) bool
}

type BackupService interface {
	// Export writes the pretty-printed state tree into dir and returns
	// the file path.
	Export(ctx context.Context, dir string) (string, error)
}
