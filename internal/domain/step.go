package domain

import "time"

// Step is the atomic dated action belonging to exactly one goal.
//
// Day-granularity dates (DueDate, LastReminderDate) are stored as
// "YYYY-MM-DD" strings, empty when unset. Keeping them as strings means a
// malformed stored date is carried through load/save untouched and shown
// verbatim instead of being silently rewritten.
type Step struct {
	ID        string `json:"id"`
	GoalID    string `json:"goalId"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"`
	IsToday   bool   `json:"isToday"`
	Completed bool   `json:"completed"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// LastReminderDate is the last day a desktop notification fired for
	// this step, used to suppress same-day repeats.
	LastReminderDate string `json:"lastReminderDate"`
}

// HasDueDate reports whether the step carries a due date.
func (s *Step) HasDueDate() bool {
	return s.DueDate != ""
}
