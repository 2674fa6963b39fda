// ABOUTME: Workout and Exercise models for fitness tracking.
// ABOUTME: Workouts are dated sessions containing child exercises.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date form used for workout, measurement
// and record dates. Time-of-day is never stored.
const DateLayout = "2006-01-02"

// WorkoutType represents the category of a workout session.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutHIIT     WorkoutType = "hiit"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutRunning  WorkoutType = "running"
	WorkoutSwimming WorkoutType = "swimming"
	WorkoutSports   WorkoutType = "sports"
)

// AllWorkoutTypes returns all valid workout types.
var AllWorkoutTypes = []WorkoutType{
	WorkoutStrength, WorkoutCardio, WorkoutYoga, WorkoutHIIT,
	WorkoutCycling, WorkoutRunning, WorkoutSwimming, WorkoutSports,
}

// IsValidWorkoutType checks if a string is a valid workout type.
func IsValidWorkoutType(s string) bool {
	for _, wt := range AllWorkoutTypes {
		if string(wt) == s {
			return true
		}
	}
	return false
}

// CaloriesPerMinute is the fallback burn rate used when a workout is
// logged without an explicit calorie count.
const CaloriesPerMinute = 8

// EstimateCalories returns the default calorie count for a workout of
// the given duration in minutes.
func EstimateCalories(durationMinutes int) int {
	return durationMinutes * CaloriesPerMinute
}

// Workout represents a logged exercise session.
type Workout struct {
	ID        uuid.UUID
	Type      WorkoutType
	Name      string
	Duration  int // minutes
	Calories  int
	Date      string // YYYY-MM-DD
	Exercises []Exercise
	Notes     *string
}

// NewWorkout creates a new Workout with generated UUID, dated today.
func NewWorkout(workoutType WorkoutType, name string, durationMinutes int) *Workout {
	return &Workout{
		ID:       uuid.New(),
		Type:     workoutType,
		Name:     name,
		Duration: durationMinutes,
		Calories: EstimateCalories(durationMinutes),
		Date:     time.Now().Format(DateLayout),
	}
}

// WithCalories sets an explicit calorie count.
func (w *Workout) WithCalories(calories int) *Workout {
	w.Calories = calories
	return w
}

// WithDate sets a custom calendar date.
func (w *Workout) WithDate(date string) *Workout {
	w.Date = date
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// WithExercise appends a child exercise.
func (w *Workout) WithExercise(e Exercise) *Workout {
	w.Exercises = append(w.Exercises, e)
	return w
}

// Day returns the workout's calendar date as a time.Time at midnight.
func (w *Workout) Day() (time.Time, error) {
	return time.Parse(DateLayout, w.Date)
}

// Validate checks the workout invariants before persistence.
func (w *Workout) Validate() error {
	if !IsValidWorkoutType(string(w.Type)) {
		return fmt.Errorf("unknown workout type: %s", w.Type)
	}
	if w.Duration < 1 {
		return fmt.Errorf("duration must be at least 1 minute, got %d", w.Duration)
	}
	if w.Calories < 0 {
		return fmt.Errorf("calories must be non-negative, got %d", w.Calories)
	}
	if _, err := time.Parse(DateLayout, w.Date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", w.Date)
	}
	return nil
}

// Exercise represents a single exercise within a workout.
// At least one of sets+reps, weight, or duration is typically set,
// but none are required.
type Exercise struct {
	ID       uuid.UUID
	Name     string
	Sets     *int
	Reps     *int
	Weight   *float64
	Duration *int // minutes
}

// NewExercise creates a new Exercise with generated UUID.
func NewExercise(name string) *Exercise {
	return &Exercise{
		ID:   uuid.New(),
		Name: name,
	}
}

// WithSets sets only the set count, for timed-set exercises.
func (e *Exercise) WithSets(sets int) *Exercise {
	e.Sets = &sets
	return e
}

// WithSetsReps sets the sets and reps counts.
func (e *Exercise) WithSetsReps(sets, reps int) *Exercise {
	e.Sets = &sets
	e.Reps = &reps
	return e
}

// WithWeight sets the working weight.
func (e *Exercise) WithWeight(weight float64) *Exercise {
	e.Weight = &weight
	return e
}

// WithDuration sets the exercise duration in minutes.
func (e *Exercise) WithDuration(minutes int) *Exercise {
	e.Duration = &minutes
	return e
}
