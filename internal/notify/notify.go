// Package notify delivers cooldown expiry notifications.
package notify

import (
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

type Expiry struct {
	Session  string
	Slot     engine.Slot
	Champion string
	Sound    bool
}

// Notifier is called once per expired cooldown, on the session goroutine.
// Implementations must not block.
type Notifier interface {
	CooldownExpired(e Expiry)
}

type Func func(e Expiry)

func (f Func) CooldownExpired(e Expiry) { f(e) }

type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) CooldownExpired(e Expiry) {
	n.log.Info("cooldown ready",
		zap.String("session", e.Session),
		zap.String("slot", string(e.Slot)),
		zap.String("champion", e.Champion),
		zap.Bool("sound", e.Sound),
	)
}

// Multi fans a notification out to every non-nil notifier.
type Multi []Notifier

func (m Multi) CooldownExpired(e Expiry) {
	for _, n := range m {
		if n != nil {
			n.CooldownExpired(e)
		}
	}
}
