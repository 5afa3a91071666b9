package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/alexanderramin/compass/internal/notify"
	"github.com/alexanderramin/compass/internal/store"
)

const notificationTitle = "Compass — step due soon"

type reminderService struct {
	store    *store.Store
	notifier notify.Notifier
	now      func() time.Time
}

func NewReminderService(st *store.Store, n notify.Notifier) ReminderService {
	return &reminderService{store: st, notifier: n, now: time.Now}
}

func (s *reminderService) Upcoming(ctx context.Context) []AgendaItem {
	state := s.store.State()
	now := s.now()
	return buildAgendaItems(state, derive.UpcomingReminders(state, now), now)
}

func (s *reminderService) NotifyDueSoon(ctx context.Context) (bool, error) {
	state := s.store.State()
	now := s.now()
	today := dateutil.Today(now)

	var toNotify []domain.Step
	for _, st := range derive.UpcomingReminders(state, now) {
		if st.LastReminderDate != today {
			toNotify = append(toNotify, st)
		}
	}
	if len(toNotify) == 0 {
		return false, nil
	}

	first := toNotify[0]
	goalTitle := "goal"
	if goal := state.GoalByID(first.GoalID); goal != nil {
		goalTitle = goal.Title
	}
	body := fmt.Sprintf("%s (%s) is getting close to its due date.", first.Title, goalTitle)

	// Delivery is best-effort; an undeliverable notification is dropped
	// without stamping, so it can fire on a later attempt today.
	if err := s.notifier.Notify(notificationTitle, body); err != nil {
		return false, nil
	}

	ids := make([]string, len(toNotify))
	for i, st := range toNotify {
		ids[i] = st.ID
	}
	err := s.store.Update(ctx, func(st *domain.State) bool {
		return mutate.MarkReminded(st, ids, today)
	})
	return true, err
}
