package domain

type Timeframe string

const (
	TimeframeToday    Timeframe = "Today"
	TimeframeWeek     Timeframe = "This Week"
	TimeframeMonth    Timeframe = "This Month"
	TimeframeLongTerm Timeframe = "Long Term"
)

// ValidTimeframes is the canonical set of accepted timeframe strings.
// Anything outside it still parses; it just falls back to the default
// due-date offset.
var ValidTimeframes = map[string]bool{
	"Today": true, "This Week": true, "This Month": true, "Long Term": true,
}

// Categories form an open enumeration: any string is allowed, but these
// are the ones the suggestion engine knows how to personalize.
const (
	CategorySchool = "School"
	CategoryHealth = "Health"
	CategoryMoney  = "Money"
	CategoryLife   = "Life"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}
