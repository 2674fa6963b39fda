// ABOUTME: Postgres schema definition for fitness data tables.
// ABOUTME: One table per entity, all scoped by user_id, with cascade deletes.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS workouts (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id TEXT NOT NULL,
	type TEXT NOT NULL,
	name TEXT NOT NULL,
	duration INTEGER NOT NULL CHECK (duration >= 1),
	calories INTEGER NOT NULL CHECK (calories >= 0),
	date DATE NOT NULL,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercises (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_id UUID NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	sets INTEGER,
	reps INTEGER,
	weight DOUBLE PRECISION,
	duration INTEGER
);

CREATE TABLE IF NOT EXISTS user_profiles (
	user_id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	weight DOUBLE PRECISION NOT NULL DEFAULT 0,
	target_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
	weekly_goal INTEGER NOT NULL DEFAULT 5,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS measurements (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id TEXT NOT NULL,
	date DATE NOT NULL,
	weight DOUBLE PRECISION NOT NULL,
	body_fat DOUBLE PRECISION,
	chest DOUBLE PRECISION,
	waist DOUBLE PRECISION,
	hips DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS personal_records (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	value DOUBLE PRECISION NOT NULL,
	unit TEXT NOT NULL,
	date DATE NOT NULL,
	previous_best DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises(user_id);
CREATE INDEX IF NOT EXISTS idx_measurements_user_date ON measurements(user_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_records_user_date ON personal_records(user_id, date DESC);
`

// InitSchema creates the fitness tables if they do not exist.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
