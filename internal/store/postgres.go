// ABOUTME: Postgres-backed Store for authenticated users.
// ABOUTME: User-scoped queries with row normalization into typed models.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/models"
)

// Postgres implements Store against a relational backend. Every query
// is scoped to the user id the store was constructed with.
type Postgres struct {
	pool   *pgxpool.Pool
	userID string
	logger *zap.Logger
}

// NewPool creates a pgx connection pool for the given database URL.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = 5 * time.Minute
	return pgxpool.NewWithConfig(ctx, config)
}

// NewPostgres creates a Postgres store for one user.
func NewPostgres(pool *pgxpool.Pool, userID string, logger *zap.Logger) *Postgres {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Postgres{pool: pool, userID: userID, logger: logger}
}

// FetchAll reads the user's complete snapshot: workouts with their
// exercises, profile, measurements, and personal records. A missing
// profile row normalizes to nil rather than an error.
func (s *Postgres) FetchAll(ctx context.Context) (*Snapshot, error) {
	workouts, err := s.fetchWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}

	profile, err := s.fetchProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	measurements, err := s.fetchMeasurements(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch measurements: %w", err)
	}

	records, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch personal records: %w", err)
	}

	return &Snapshot{
		Workouts:     workouts,
		Profile:      profile,
		Measurements: measurements,
		Records:      records,
	}, nil
}

// AddWorkout inserts the workout row and its exercises in a single
// transaction, so a failed exercise insert never leaves an orphaned
// workout behind. Returns the workout with its generated identities.
func (s *Postgres) AddWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add workout: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO workouts (user_id, type, name, duration, calories, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.userID, string(w.Type), w.Name, w.Duration, w.Calories, w.Date, w.Notes,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for i := range w.Exercises {
		e := &w.Exercises[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO exercises (workout_id, user_id, name, sets, reps, weight, duration)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			w.ID, s.userID, e.Name, e.Sets, e.Reps, e.Weight, e.Duration,
		).Scan(&e.ID)
		if err != nil {
			return nil, fmt.Errorf("insert exercise %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add workout: %w", err)
	}

	s.logger.Info("workout added",
		zap.String("workout_id", w.ID.String()),
		zap.String("type", string(w.Type)))
	return &w, nil
}

// DeleteWorkout removes a workout scoped to both workout id and user
// id, guarding against cross-user deletion. Exercises cascade at the
// schema level. Returns ErrNotFound when no row matched.
func (s *Postgres) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	cmd, err := s.pool.Exec(ctx,
		`DELETE FROM workouts WHERE id=$1 AND user_id=$2`, id, s.userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile upserts the user's single profile row, stamping
// updated_at.
func (s *Postgres) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_profiles (user_id, name, weight, target_weight, weekly_goal, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			weight = EXCLUDED.weight,
			target_weight = EXCLUDED.target_weight,
			weekly_goal = EXCLUDED.weekly_goal,
			updated_at = now()`,
		s.userID, p.Name, p.Weight, p.TargetWeight, p.WeeklyGoal)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// AddMeasurement inserts one measurement row.
func (s *Postgres) AddMeasurement(ctx context.Context, m models.Measurement) error {
	date := m.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO measurements (user_id, date, weight, body_fat, chest, waist, hips)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.userID, date, m.Weight, m.BodyFat, m.Chest, m.Waist, m.Hips)
	if err != nil {
		return fmt.Errorf("add measurement: %w", err)
	}
	return nil
}

// AddPersonalRecord inserts one personal record row, returning it with
// its generated identity.
func (s *Postgres) AddPersonalRecord(ctx context.Context, r models.PersonalRecord) (*models.PersonalRecord, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO personal_records (user_id, name, value, unit, date, previous_best)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		s.userID, r.Name, r.Value, r.Unit, r.Date, r.PreviousBest,
	).Scan(&r.ID)
	if err != nil {
		return nil, fmt.Errorf("add personal record: %w", err)
	}
	return &r, nil
}

// Close is a no-op: the pool is owned by the caller and may be shared.
func (s *Postgres) Close() error {
	return nil
}

// fetchWorkouts reads workouts ordered by date descending and attaches
// each workout's exercises from a second user-scoped read.
func (s *Postgres) fetchWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, name, duration, calories, date, notes
		FROM workouts
		WHERE user_id=$1
		ORDER BY date DESC, created_at DESC`, s.userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	exRows, err := s.pool.Query(ctx, `
		SELECT id, workout_id, name, sets, reps, weight, duration
		FROM exercises
		WHERE user_id=$1`, s.userID)
	if err != nil {
		return nil, err
	}
	defer exRows.Close()

	for exRows.Next() {
		var e models.Exercise
		var workoutID uuid.UUID
		if err := exRows.Scan(&e.ID, &workoutID, &e.Name, &e.Sets, &e.Reps, &e.Weight, &e.Duration); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if i, ok := index[workoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, e)
		}
	}
	return workouts, exRows.Err()
}

// fetchProfile reads the user's single profile row. Zero rows is not
// an error: it signals "no profile yet" and returns nil. Measurements
// are intentionally not embedded; they are fetched independently.
func (s *Postgres) fetchProfile(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.pool.QueryRow(ctx, `
		SELECT name, weight, target_weight, weekly_goal
		FROM user_profiles
		WHERE user_id=$1`, s.userID,
	).Scan(&p.Name, &p.Weight, &p.TargetWeight, &p.WeeklyGoal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Postgres) fetchMeasurements(ctx context.Context) ([]models.Measurement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, weight, body_fat, chest, waist, hips
		FROM measurements
		WHERE user_id=$1
		ORDER BY date DESC, created_at DESC`, s.userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []models.Measurement
	for rows.Next() {
		var m models.Measurement
		var date time.Time
		if err := rows.Scan(&date, &m.Weight, &m.BodyFat, &m.Chest, &m.Waist, &m.Hips); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.Date = date.Format(models.DateLayout)
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

func (s *Postgres) fetchRecords(ctx context.Context) ([]models.PersonalRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, value, unit, date, previous_best
		FROM personal_records
		WHERE user_id=$1
		ORDER BY date DESC, created_at DESC`, s.userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PersonalRecord
	for rows.Next() {
		var r models.PersonalRecord
		var date time.Time
		if err := rows.Scan(&r.ID, &r.Name, &r.Value, &r.Unit, &date, &r.PreviousBest); err != nil {
			return nil, fmt.Errorf("scan personal record: %w", err)
		}
		r.Date = date.Format(models.DateLayout)
		records = append(records, r)
	}
	return records, rows.Err()
}

// scanWorkout normalizes one workout row into the typed model.
func scanWorkout(rows pgx.Rows) (models.Workout, error) {
	var w models.Workout
	var workoutType string
	var date time.Time
	err := rows.Scan(&w.ID, &workoutType, &w.Name, &w.Duration, &w.Calories, &date, &w.Notes)
	if err != nil {
		return w, fmt.Errorf("scan workout: %w", err)
	}
	w.Type = models.WorkoutType(workoutType)
	w.Date = date.Format(models.DateLayout)
	return w, nil
}
