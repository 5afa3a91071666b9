package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/derive"
)

// FormatInsights renders the statistics panel.
func FormatInsights(sum derive.InsightSummary, premium bool) string {
	headers := []string{"METRIC", "VALUE"}
	rows := [][]string{
		{StyleFg.Render("Goals"), Bold(fmt.Sprintf("%d", sum.TotalGoals))},
		{StyleFg.Render("Steps"), Bold(fmt.Sprintf("%d", sum.TotalSteps))},
		{StyleFg.Render("Steps completed"), StyleGreen.Render(fmt.Sprintf("%d", sum.StepsCompleted))},
		{StyleFg.Render("Completion rate"), Bold(fmt.Sprintf("%d%%", sum.CompletionRatePercent))},
		{StyleFg.Render("Active days"), Bold(fmt.Sprintf("%d", sum.ActiveDays))},
		{StyleFg.Render("Personalization"), StylePurple.Render(sum.PersonalizationLevel)},
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	if premium {
		b.WriteString("\n" + Dim("Premium plan: everything stays on this device, forever free.") + "\n")
	}
	return RenderBox("Insights", b.String())
}

// FormatIdeas renders the ideas page: the fixed short/long-term lists plus
// personalized per-category ideas.
func FormatIdeas(shortTerm, longTerm, personal []string, advisory string) string {
	var b strings.Builder

	b.WriteString(Header("Small wins this week") + "\n")
	for _, idea := range shortTerm {
		b.WriteString(Dim("  · ") + StyleFg.Render(idea) + "\n")
	}

	b.WriteString("\n" + Header("Bigger picture") + "\n")
	for _, idea := range longTerm {
		b.WriteString(Dim("  · ") + StyleFg.Render(idea) + "\n")
	}

	b.WriteString("\n" + Header("For you") + "\n")
	if advisory != "" {
		b.WriteString(Dim("  "+advisory) + "\n")
	}
	for _, idea := range personal {
		b.WriteString(Dim("  · ") + StylePurple.Render(idea) + "\n")
	}

	return b.String()
}
