// ABOUTME: Derived-statistics engine for workout history.
// ABOUTME: Pure functions computing streaks, weekly goal progress, and totals.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// day strips time-of-day, leaving midnight UTC of the same calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Streak returns the number of consecutive days with at least one
// workout, counting back from today. A gap of more than one day between
// today and the most recent workout (or between successive workout
// days) ends the streak. The result is order-independent in the input
// and always recomputed from history, never stored.
func Streak(workouts []models.Workout, today time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(workouts))
	var dates []time.Time
	for _, w := range workouts {
		if _, ok := seen[w.Date]; ok {
			continue
		}
		seen[w.Date] = struct{}{}
		d, err := w.Day()
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	cursor := day(today)
	for _, d := range dates {
		diff := int(cursor.Sub(d).Hours() / 24)
		if diff > 1 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

// WeekStart returns the most recent Sunday at or before today,
// time-of-day stripped.
func WeekStart(today time.Time) time.Time {
	d := day(today)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeeklyGoalProgress returns the percentage of the weekly workout-count
// goal met since the most recent Sunday, clamped to [0, 100].
// A goal of zero or less yields 0.
func WeeklyGoalProgress(workouts []models.Workout, weeklyGoal int, today time.Time) int {
	if weeklyGoal <= 0 {
		return 0
	}

	start := WeekStart(today)
	count := 0
	for _, w := range workouts {
		d, err := w.Day()
		if err != nil {
			continue
		}
		if !d.Before(start) {
			count++
		}
	}

	pct := math.Round(float64(count) / float64(weeklyGoal) * 100)
	return int(math.Min(100, pct))
}

// Compute derives UserStats from the workout history, profile, and
// personal records. Every field is fully recomputed; no incremental
// patching, so the stats self-correct as history changes.
func Compute(workouts []models.Workout, profile *models.UserProfile, records []models.PersonalRecord, today time.Time) models.UserStats {
	weeklyGoal := 5
	if profile != nil && profile.WeeklyGoal > 0 {
		weeklyGoal = profile.WeeklyGoal
	}

	s := models.UserStats{
		TotalWorkouts:      len(workouts),
		CurrentStreak:      Streak(workouts, today),
		WeeklyGoalProgress: WeeklyGoalProgress(workouts, weeklyGoal, today),
		PersonalRecords:    records,
	}
	for _, w := range workouts {
		s.TotalCalories += w.Calories
		s.TotalMinutes += w.Duration
	}
	return s
}
