// Package notify sends best-effort desktop notifications. Delivery is
// never guaranteed and failures are invisible to state mutations.
package notify

import "github.com/gen2brain/beeep"

// Notifier dispatches a single desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the platform notification daemon.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Nop swallows every notification. Used in tests and on terminals where
// notifications are unwanted.
type Nop struct{}

func (Nop) Notify(title, body string) error { return nil }
