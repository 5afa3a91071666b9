package derive

import (
	"sort"

	"github.com/alexanderramin/compass/internal/domain"
)

// Personalization tier labels, keyed to how many distinct days the app has
// been used.
const (
	TierGuest    = "Off (guest mode)"
	TierStarting = "Starting"
	TierLearning = "Learning you"
	TierPersonal = "Getting personal"
	TierTuned    = "Highly tuned"
)

// PersonalizationLevel reports the learning tier. Without an account the
// tier is always guest mode, regardless of usage.
func PersonalizationLevel(s *domain.State) string {
	if !s.Account.HasAccount {
		return TierGuest
	}
	days := s.Profile.ActiveDays
	switch {
	case days < 7:
		return TierStarting
	case days < 30:
		return TierLearning
	case days < 60:
		return TierPersonal
	default:
		return TierTuned
	}
}

// MostUsedCategories returns the user's top goal categories by count,
// descending, ties broken by first appearance.
func MostUsedCategories(s *domain.State, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for _, g := range s.Goals {
		if counts[g.Category] == 0 {
			order = append(order, g.Category)
		}
		counts[g.Category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}
