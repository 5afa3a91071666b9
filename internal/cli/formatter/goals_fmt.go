package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/service"
)

// FormatGoals renders the goal list with per-goal step rollups.
func FormatGoals(views []service.GoalView) string {
	if len(views) == 0 {
		return Dim("No goals yet. Start with one small thing that matters to you.") + "\n"
	}

	var b strings.Builder
	for i, view := range views {
		if i > 0 {
			b.WriteString("\n")
		}

		chips := fmt.Sprintf("%s · %s · %d/%d steps",
			StylePurple.Render(view.Goal.Category),
			StyleBlue.Render(string(view.Goal.Timeframe)),
			view.DoneSteps, len(view.Steps))
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(view.Goal.Title), chips))

		why := view.Goal.Why
		if why == "" {
			why = "No reason added yet."
		}
		b.WriteString(Dim("  "+why) + "\n")

		if len(view.Steps) == 0 {
			b.WriteString(Dim("  No steps yet. Add 1-3 tiny steps to get started.") + "\n")
			continue
		}
		for _, st := range view.Steps {
			bits := []string{}
			if st.HasDueDate() {
				bits = append(bits, dateutil.Format(st.DueDate))
			}
			if st.IsToday {
				bits = append(bits, "on today's list")
			}
			if st.Completed {
				bits = append(bits, "done")
			}
			meta := strings.Join(bits, " · ")
			if meta == "" {
				meta = "no date"
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				Checkbox(st.Completed), StyleFg.Render(st.Title), Dim(meta)))
		}
	}
	return b.String()
}
