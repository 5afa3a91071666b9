package derive

import "github.com/alexanderramin/compass/internal/domain"

// EnergyBudget maps an energy level to how many steps the prioritizer may
// put on the today list. Callers can override the budget with an explicit
// limit; this is only the default tiering.
func EnergyBudget(level domain.EnergyLevel) int {
	switch level {
	case domain.EnergyLow:
		return 3
	case domain.EnergyHigh:
		return 7
	default:
		return 5
	}
}
