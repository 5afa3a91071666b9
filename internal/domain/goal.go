package domain

import "time"

// Goal is a long-lived intention the user wants to move toward. Goals are
// never deleted; steps reference them by ID for as long as the state lives.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Timeframe Timeframe `json:"timeframe"`
	Why       string    `json:"why"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayTitle returns the goal title truncated for narrow layouts.
func (g *Goal) DisplayTitle(max int) string {
	if max <= 0 || len(g.Title) <= max {
		return g.Title
	}
	return g.Title[:max]
}
