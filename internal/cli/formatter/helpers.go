package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DueLabel renders a due-date phrase from the whole-day distance: "today",
// "in Nd", or "Nd overdue". nil means no due date.
func DueLabel(daysUntil *int) string {
	if daysUntil == nil {
		return "no date"
	}
	switch d := *daysUntil; {
	case d < 0:
		return fmt.Sprintf("%dd overdue", -d)
	case d == 0:
		return "today"
	case d == 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", d)
	}
}

// DueStyled renders a short due-date chip with urgency coloring: red when
// overdue or due today, yellow inside a week, plain beyond.
func DueStyled(dateStr string, daysUntil *int) string {
	text := dateutil.Format(dateStr)
	if daysUntil == nil {
		return StyleDim.Render(text)
	}
	switch d := *daysUntil; {
	case d < 0:
		return StyleRed.Render(text + " (overdue)")
	case d <= 2:
		return StyleRed.Render(text)
	case d <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleFg.Render("[ ]")
}
