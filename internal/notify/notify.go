// ABOUTME: Change-notification contract for fitness data tables.
// ABOUTME: Delivers triggers (not payloads) on any write to a user's data.
package notify

import (
	"context"
	"sync"
)

// Table names carried on change events, one per synced entity.
const (
	TableWorkouts  = "workouts"
	TableExercises = "exercises"
	TableMeasures  = "measurements"
	TableRecords   = "personal_records"
)

// Event signals that something changed in one of a user's tables.
// It carries no payload: subscribers are expected to refetch.
type Event struct {
	Table string
}

// Notifier is the publish/subscribe capability for change triggers,
// keyed by user identity.
type Notifier interface {
	// Publish announces a change to one of the user's tables. Writers
	// call this after every successful mutation, including their own,
	// so all sessions converge through the same refetch path.
	Publish(ctx context.Context, userID, table string) error

	// Subscribe returns a channel of change events for all of the
	// user's tables and a cancel function that releases the
	// subscription. The channel closes after cancel. No events may be
	// delivered after cancel returns.
	Subscribe(ctx context.Context, userID string) (<-chan Event, func(), error)

	// Close releases the notifier's resources.
	Close() error
}

// Nop is a Notifier that drops publishes and never delivers events.
// Guest mode uses it: with no remote peers there is nothing to hear.
type Nop struct{}

// Publish discards the event.
func (Nop) Publish(ctx context.Context, userID, table string) error { return nil }

// Subscribe returns a channel that never delivers.
func (Nop) Subscribe(ctx context.Context, userID string) (<-chan Event, func(), error) {
	ch := make(chan Event)
	var once sync.Once
	cancel := func() {
		once.Do(func() { close(ch) })
	}
	return ch, cancel, nil
}

// Close is a no-op.
func (Nop) Close() error { return nil }
