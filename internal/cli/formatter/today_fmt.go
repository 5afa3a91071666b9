package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/derive"
	"github.com/alexanderramin/compass/internal/service"
)

// reminderDisplayCap truncates the reminder banner; the derivation itself
// is uncapped.
const reminderDisplayCap = 4

// FormatToday renders the today page: greeting, counters, reminder banner,
// agenda, and suggestions.
func FormatToday(
	greeting, motivation string,
	snap derive.Snapshot,
	agenda, reminders []service.AgendaItem,
	suggestions []string,
) string {
	var b strings.Builder

	b.WriteString(StyleFg.Render(greeting) + "\n")
	b.WriteString(Dim(motivation) + "\n\n")

	counters := fmt.Sprintf("%s goals · %s steps today · %s done",
		Bold(fmt.Sprintf("%d", snap.TotalGoals)),
		Bold(fmt.Sprintf("%d", snap.OpenTodaySteps)),
		StyleGreen.Render(fmt.Sprintf("%d", snap.CompletedSteps)))
	b.WriteString(counters + "\n")

	if len(reminders) > 0 {
		b.WriteString("\n" + Header("Due soon") + "\n")
		shown := reminders
		if len(shown) > reminderDisplayCap {
			shown = shown[:reminderDisplayCap]
		}
		for _, r := range shown {
			goal := r.GoalTitle
			if goal == "" {
				goal = "goal"
			}
			b.WriteString(fmt.Sprintf("  %s · %s · %s\n",
				StyleFg.Render(r.Step.Title), Dim(goal), StyleYellow.Render(DueLabel(r.DaysUntil))))
		}
	}

	b.WriteString("\n" + Header("Today") + "\n")
	if len(agenda) == 0 {
		b.WriteString(Dim("  No steps for today yet. Add one small thing you can actually do.") + "\n")
	}
	for _, item := range agenda {
		title := StyleFg.Render(item.Step.Title)
		if item.Step.Completed {
			title = StyleDim.Strikethrough(true).Render(item.Step.Title)
		}
		meta := []string{}
		if item.GoalTitle != "" {
			meta = append(meta, item.GoalTitle)
		}
		if item.Step.HasDueDate() {
			meta = append(meta, DueLabel(item.DaysUntil))
		}
		line := fmt.Sprintf("  %s %s", Checkbox(item.Step.Completed), title)
		if len(meta) > 0 {
			line += Dim("  " + strings.Join(meta, " · "))
		}
		b.WriteString(line + "\n")
	}

	if len(suggestions) > 0 {
		b.WriteString("\n" + Header("Suggestions") + "\n")
		for _, s := range suggestions {
			b.WriteString(Dim("  · ") + StyleFg.Render(s) + "\n")
		}
	}

	return b.String()
}
