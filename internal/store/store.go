// ABOUTME: Store interface for fitness data backends.
// ABOUTME: Defines the contract shared by the Postgres and in-memory stores.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/harperreed/fittrack/internal/models"
)

// ErrNotFound indicates a lookup or delete matched no rows.
var ErrNotFound = errors.New("not found")

// Snapshot is one consistent view of a user's fitness data. FetchAll
// replaces the whole snapshot at once; there is no partial refresh.
type Snapshot struct {
	Workouts     []models.Workout
	Profile      *models.UserProfile // nil means no profile yet
	Measurements []models.Measurement
	Records      []models.PersonalRecord
}

// Store is the capability set shared by both data backends. The
// authenticated mode talks to Postgres; guest mode uses the seeded
// in-memory store. Callers depend only on this interface.
type Store interface {
	// FetchAll reads the full snapshot: workouts with exercises,
	// profile, measurements, and personal records, each ordered by
	// date descending. An absent profile is not an error.
	FetchAll(ctx context.Context) (*Snapshot, error)

	// AddWorkout persists a workout and its exercises, returning the
	// stored workout with assigned identities.
	AddWorkout(ctx context.Context, w models.Workout) (*models.Workout, error)

	// DeleteWorkout removes a workout by id. Child exercises are
	// removed with it. Returns ErrNotFound when no row matched.
	DeleteWorkout(ctx context.Context, id uuid.UUID) error

	// UpdateProfile upserts the user's single profile row.
	UpdateProfile(ctx context.Context, p models.UserProfile) error

	// AddMeasurement appends a measurement to the timeline.
	AddMeasurement(ctx context.Context, m models.Measurement) error

	// AddPersonalRecord persists a personal record, returning it with
	// its assigned identity.
	AddPersonalRecord(ctx context.Context, r models.PersonalRecord) (*models.PersonalRecord, error)

	// Close releases backend resources.
	Close() error
}
