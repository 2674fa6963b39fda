// ABOUTME: UserProfile, Measurement, PersonalRecord and derived UserStats models.
// ABOUTME: Measurements are an append-only timeline ordered by date.
package models

import (
	"github.com/google/uuid"
)

// UserProfile holds the user's profile and goal settings.
// Measurements are fetched independently of the profile row and are
// only populated where the caller loads them explicitly.
type UserProfile struct {
	Name         string
	Weight       float64
	TargetWeight float64
	WeeklyGoal   int // workouts per week
	Measurements []Measurement
}

// Measurement is a dated body measurement entry. The timeline is
// append-only; the latest entry by date drives "current" displays.
type Measurement struct {
	Date    string // YYYY-MM-DD
	Weight  float64
	BodyFat *float64
	Chest   *float64
	Waist   *float64
	Hips    *float64
}

// LatestMeasurement returns the most recent measurement by date.
// Duplicate dates are broken by insertion order: the later entry wins.
// Returns nil when the timeline is empty.
func (p *UserProfile) LatestMeasurement() *Measurement {
	var latest *Measurement
	for i := range p.Measurements {
		m := &p.Measurements[i]
		if latest == nil || m.Date >= latest.Date {
			latest = m
		}
	}
	return latest
}

// PersonalRecord is the best recorded value for a named metric.
type PersonalRecord struct {
	ID           uuid.UUID
	Name         string
	Value        float64
	Unit         string
	Date         string // YYYY-MM-DD
	PreviousBest *float64
}

// NewPersonalRecord creates a new PersonalRecord with generated UUID.
func NewPersonalRecord(name string, value float64, unit, date string) *PersonalRecord {
	return &PersonalRecord{
		ID:    uuid.New(),
		Name:  name,
		Value: value,
		Unit:  unit,
		Date:  date,
	}
}

// WithPreviousBest sets the prior best value for delta display.
func (r *PersonalRecord) WithPreviousBest(v float64) *PersonalRecord {
	r.PreviousBest = &v
	return r
}

// LowerIsBetter reports whether smaller values beat larger ones for
// this record's unit. Timed records ("min", "sec") improve downward;
// everything else improves upward.
func (r *PersonalRecord) LowerIsBetter() bool {
	return r.Unit == "min" || r.Unit == "sec"
}

// Improved reports whether the record beats its previous best.
// Records without a previous best count as improvements.
func (r *PersonalRecord) Improved() bool {
	if r.PreviousBest == nil {
		return true
	}
	if r.LowerIsBetter() {
		return r.Value < *r.PreviousBest
	}
	return r.Value > *r.PreviousBest
}

// UserStats is derived from the workout history and profile. It is
// never persisted; every field is recomputed from source data.
type UserStats struct {
	TotalWorkouts      int
	TotalCalories      int
	TotalMinutes       int
	CurrentStreak      int
	WeeklyGoalProgress int // 0-100
	PersonalRecords    []PersonalRecord
}
