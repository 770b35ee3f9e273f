// Package notifier carries soft-deletion events from the stores to a single
// background subscriber. Delivery is best effort: at most once, no retry, no
// persistence of missed events.
package notifier

import (
	"context"
	"time"

	"github.com/api-sage/bank-back-office/internal/logger"
)

type Event struct {
	Kind   string
	Entity any
	At     time.Time
}

// ChangeNotifier buffers deletion events in a bounded channel. When the
// buffer is full the event is dropped rather than blocking the mutation path.
type ChangeNotifier struct {
	events chan Event
}

func New(buffer int) *ChangeNotifier {
	if buffer <= 0 {
		buffer = 64
	}
	return &ChangeNotifier{events: make(chan Event, buffer)}
}

// EntityDeleted implements the store-side hook. It never blocks.
func (n *ChangeNotifier) EntityDeleted(kind string, entity any) {
	event := Event{Kind: kind, Entity: entity, At: time.Now().UTC()}
	select {
	case n.events <- event:
	default:
		logger.Info("change notifier buffer full, event dropped", logger.Fields{
			"kind": kind,
		})
	}
}

// Events exposes the stream to the active subscriber. There is one stream;
// attaching several consumers splits the events between them.
func (n *ChangeNotifier) Events() <-chan Event {
	return n.events
}

// Run consumes events and logs them until the context is cancelled. This is
// the default audit subscriber wired in by main.
func (n *ChangeNotifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-n.events:
			logger.Info("entity soft deleted", logger.Fields{
				"kind":      event.Kind,
				"entity":    logger.SanitizePayload(event.Entity),
				"deletedAt": event.At.Format(time.RFC3339),
			})
		}
	}
}

// NoOp discards every event. Used by tests that do not care about the hook.
type NoOp struct{}

func (NoOp) EntityDeleted(string, any) {}
