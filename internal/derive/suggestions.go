package derive

import (
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
)

// topCategoryCount is how many of the user's categories feed personalized
// suggestions.
const topCategoryCount = 2

// suggestionCap bounds the suggestion list shown on the today page.
const suggestionCap = 5

// ShortTermIdeas are the always-available small actions.
var ShortTermIdeas = []string{
	"Clean one small surface (desk, nightstand, or chair).",
	"Reply to one message you've been avoiding.",
	"Open a school task and do 5 focused minutes.",
	"Drink a full glass of water and stretch.",
	"Put tomorrow's outfit or bag ready.",
}

// LongTermIdeas are prompts for the bigger picture.
var LongTermIdeas = []string{
	"List 3 things you want better a year from now.",
	"Write one paragraph describing your future self.",
	"Decide on a realistic savings goal for this month.",
	"Pick 2 days for light exercise and commit to them.",
	"Choose one subject to raise by one grade letter.",
}

// categoryNudges maps known categories to their personalized suggestion.
var categoryNudges = map[string]string{
	domain.CategorySchool: "Spend 10 minutes on the assignment closest to due.",
	domain.CategoryHealth: "Do a 5 minute walk or light stretch.",
	domain.CategoryMoney:  "Check your balances and move $5 to savings.",
}

// Suggestions builds the today-page suggestion list: the short-term base
// set, extended with category nudges for the user's top categories when
// personalization is active. Deduplicated preserving first appearance and
// capped at five. Empty when the suggestions flag is off.
func Suggestions(s *domain.State) []string {
	if !s.Flags.SuggestionsEnabled {
		return nil
	}

	base := make([]string, len(ShortTermIdeas))
	copy(base, ShortTermIdeas)

	if s.Account.HasAccount {
		for _, cat := range MostUsedCategories(s, topCategoryCount) {
			if nudge, ok := categoryNudges[cat]; ok {
				base = append(base, nudge)
			}
		}
	}

	seen := make(map[string]bool, len(base))
	var unique []string
	for _, txt := range base {
		if seen[txt] {
			continue
		}
		seen[txt] = true
		unique = append(unique, txt)
	}

	if len(unique) > suggestionCap {
		unique = unique[:suggestionCap]
	}
	return unique
}

// PersonalIdeas builds the per-category idea list for the ideas page. The
// returned advisory is non-empty when the list cannot be personalized yet.
func PersonalIdeas(s *domain.State) (ideas []string, advisory string) {
	if !s.Flags.SuggestionsEnabled {
		return nil, "Personal suggestions are turned off in admin settings."
	}

	cats := MostUsedCategories(s, topCategoryCount)
	if !s.Account.HasAccount || len(cats) == 0 {
		return nil, "Turn on account mode and add a few goals to see personal suggestions."
	}

	for _, cat := range cats {
		switch cat {
		case domain.CategorySchool:
			ideas = append(ideas, "Choose one class and write down the next tiny action needed.")
		case domain.CategoryHealth:
			ideas = append(ideas, "Pick a realistic bedtime for tonight and prepare for it.")
		case domain.CategoryMoney:
			ideas = append(ideas, "Open your banking app and just look, without judging.")
		default:
			ideas = append(ideas, fmt.Sprintf("Do one tiny thing that would move your %q goals forward.", cat))
		}
	}
	return ideas, ""
}
