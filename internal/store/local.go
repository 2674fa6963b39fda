// ABOUTME: In-memory Store for guest mode, seeded with demo data.
// ABOUTME: Never touches the network; state is lost when the process exits.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/fittrack/internal/models"
)

// Local implements Store with an in-memory snapshot. It serves guest
// mode: no backing store, no persistence, ids generated locally.
type Local struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewLocal creates a Local store seeded with demonstration data.
func NewLocal() *Local {
	return &Local{snap: SeedSnapshot()}
}

// NewEmptyLocal creates a Local store with no data.
func NewEmptyLocal() *Local {
	return &Local{}
}

// FetchAll returns a copy of the current snapshot.
func (s *Local) FetchAll(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnapshot(), nil
}

// AddWorkout prepends the workout, assigning local identities to the
// workout and any exercises that lack one.
func (s *Local) AddWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	for i := range w.Exercises {
		if w.Exercises[i].ID == uuid.Nil {
			w.Exercises[i].ID = uuid.New()
		}
	}

	s.snap.Workouts = append([]models.Workout{w}, s.snap.Workouts...)
	return &w, nil
}

// DeleteWorkout removes the workout with the given id. Deleting an
// absent id is a no-op: the collection-level delete is idempotent.
func (s *Local) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.Workouts[:0]
	for _, w := range s.snap.Workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.snap.Workouts = kept
	return nil
}

// UpdateProfile replaces the profile. An update carrying no
// measurements keeps the existing timeline.
func (s *Local) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(p.Measurements) == 0 && s.snap.Profile != nil {
		p.Measurements = s.snap.Profile.Measurements
	}
	s.snap.Profile = &p
	return nil
}

// AddMeasurement prepends a measurement to the timeline.
func (s *Local) AddMeasurement(ctx context.Context, m models.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.Date == "" {
		m.Date = time.Now().Format(models.DateLayout)
	}
	s.snap.Measurements = append([]models.Measurement{m}, s.snap.Measurements...)
	return nil
}

// AddPersonalRecord prepends a personal record, assigning an identity
// when it lacks one.
func (s *Local) AddPersonalRecord(ctx context.Context, r models.PersonalRecord) (*models.PersonalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.snap.Records = append([]models.PersonalRecord{r}, s.snap.Records...)
	return &r, nil
}

// Close is a no-op for the in-memory store.
func (s *Local) Close() error {
	return nil
}

// copySnapshot duplicates the snapshot so callers never alias internal
// state. Caller must hold the mutex.
func (s *Local) copySnapshot() *Snapshot {
	out := &Snapshot{
		Workouts:     make([]models.Workout, len(s.snap.Workouts)),
		Measurements: make([]models.Measurement, len(s.snap.Measurements)),
		Records:      make([]models.PersonalRecord, len(s.snap.Records)),
	}
	copy(out.Workouts, s.snap.Workouts)
	copy(out.Measurements, s.snap.Measurements)
	copy(out.Records, s.snap.Records)
	for i := range out.Workouts {
		exercises := make([]models.Exercise, len(s.snap.Workouts[i].Exercises))
		copy(exercises, s.snap.Workouts[i].Exercises)
		out.Workouts[i].Exercises = exercises
	}
	if s.snap.Profile != nil {
		p := *s.snap.Profile
		p.Measurements = make([]models.Measurement, len(s.snap.Profile.Measurements))
		copy(p.Measurements, s.snap.Profile.Measurements)
		out.Profile = &p
	}
	return out
}
