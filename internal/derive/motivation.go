package derive

import (
	"math/rand/v2"
	"time"
)

// MotivationLines rotate on the today page.
var MotivationLines = []string{
	"You don't have to fix everything today. One small step is enough.",
	"Done > perfect. A tiny messy step still counts.",
	"If it takes less than 2 minutes, do it now.",
	"Future you will be grateful for even 10% effort today.",
	"Rest is also productive when you choose it on purpose.",
}

// RandomMotivation picks one motivation line.
func RandomMotivation() string {
	return MotivationLines[rand.IntN(len(MotivationLines))]
}

// Greeting returns a time-of-day greeting.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning. One small step is enough."
	case hour < 18:
		return "Good afternoon. You don't have to do it all today."
	default:
		return "Good evening. It still counts if you start now."
	}
}
