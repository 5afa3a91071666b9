package domain

// Settings holds the global reminder preferences.
type Settings struct {
	RemindersEnabled bool `json:"remindersEnabled"`
	RemindDaysBefore int  `json:"remindDaysBefore"`
}

// Flags are administrative toggles gating optional surfaces.
type Flags struct {
	PremiumEnabled      bool `json:"premiumEnabled"`
	SuggestionsEnabled  bool `json:"suggestionsEnabled"`
	ExperimentalEnabled bool `json:"experimentalEnabled"`
}

// Profile tracks usage at day granularity. Dates are "YYYY-MM-DD" strings,
// empty until first set.
type Profile struct {
	FirstUseDate   string `json:"firstUseDate"`
	ActiveDays     int    `json:"activeDays"`
	LastActiveDate string `json:"lastActiveDate"`
}

// Account gates the learning/personalization features. Name and email are
// display-only and never leave the machine.
type Account struct {
	HasAccount bool   `json:"hasAccount"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// State is the root state tree. The store owns the single live instance;
// every other component reads it in place and mutates it only through the
// mutation operations.
type State struct {
	Goals    []Goal   `json:"goals"`
	Steps    []Step   `json:"steps"`
	Settings Settings `json:"settings"`
	Flags    Flags    `json:"flags"`
	Profile  Profile  `json:"profile"`
	Account  Account  `json:"account"`
}

// DefaultState returns a fresh state tree with schema defaults. Profile
// dates are left empty; the store fills them on first load.
func DefaultState() *State {
	return &State{
		Goals: []Goal{},
		Steps: []Step{},
		Settings: Settings{
			RemindersEnabled: true,
			RemindDaysBefore: 1,
		},
		Flags: Flags{
			PremiumEnabled:      true,
			SuggestionsEnabled:  true,
			ExperimentalEnabled: false,
		},
	}
}

// Clone returns a deep copy of the state tree.
func (s *State) Clone() *State {
	out := *s
	out.Goals = make([]Goal, len(s.Goals))
	copy(out.Goals, s.Goals)
	out.Steps = make([]Step, len(s.Steps))
	for i, st := range s.Steps {
		if st.CompletedAt != nil {
			t := *st.CompletedAt
			st.CompletedAt = &t
		}
		out.Steps[i] = st
	}
	return &out
}

// GoalByID returns the goal with the given ID, or nil.
func (s *State) GoalByID(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// StepByID returns the step with the given ID, or nil.
func (s *State) StepByID(id string) *Step {
	for i := range s.Steps {
		if s.Steps[i].ID == id {
			return &s.Steps[i]
		}
	}
	return nil
}

// StepsForGoal returns the steps attached to the given goal, in insertion
// order.
func (s *State) StepsForGoal(goalID string) []Step {
	var out []Step
	for _, st := range s.Steps {
		if st.GoalID == goalID {
			out = append(out, st)
		}
	}
	return out
}
