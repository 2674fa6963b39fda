// ABOUTME: Demonstration data for the guest-mode in-memory store.
// ABOUTME: Fifteen seeded workouts over fifteen days, plus profile and records.
package store

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// seedWorkout describes one demo session; dates are assigned relative
// to today so the demo streak and weekly progress stay meaningful.
type seedWorkout struct {
	daysAgo   int
	wType     models.WorkoutType
	name      string
	duration  int
	calories  int
	notes     string
	exercises []models.Exercise
}

// SeedSnapshot builds the guest-mode demonstration data set.
func SeedSnapshot() Snapshot {
	now := time.Now()
	date := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(models.DateLayout)
	}

	seeds := []seedWorkout{
		{0, models.WorkoutStrength, "Upper Body Power", 45, 320, "Felt strong today! Increased bench press weight.", []models.Exercise{
			*models.NewExercise("Bench Press").WithSetsReps(4, 10).WithWeight(135),
			*models.NewExercise("Shoulder Press").WithSetsReps(3, 12).WithWeight(65),
			*models.NewExercise("Bicep Curls").WithSetsReps(3, 15).WithWeight(30),
			*models.NewExercise("Tricep Dips").WithSetsReps(3, 12),
		}},
		{1, models.WorkoutCardio, "Morning Run", 35, 380, "New personal best on 5K!", []models.Exercise{
			*models.NewExercise("5K Run").WithDuration(28),
			*models.NewExercise("Cool Down Walk").WithDuration(7),
		}},
		{2, models.WorkoutYoga, "Flexibility Flow", 60, 180, "", []models.Exercise{
			*models.NewExercise("Sun Salutation").WithDuration(15),
			*models.NewExercise("Warrior Sequence").WithDuration(20),
			*models.NewExercise("Hip Openers").WithDuration(15),
			*models.NewExercise("Savasana").WithDuration(10),
		}},
		{3, models.WorkoutHIIT, "Tabata Blast", 25, 290, "Intense session! Heart rate peaked at 175 bpm.", []models.Exercise{
			*models.NewExercise("Burpees").WithSetsReps(4, 20),
			*models.NewExercise("Mountain Climbers").WithSetsReps(4, 30),
			*models.NewExercise("Jump Squats").WithSetsReps(4, 15),
			*models.NewExercise("High Knees").WithSets(4).WithDuration(1),
		}},
		{4, models.WorkoutCycling, "Hill Climbs", 50, 420, "", []models.Exercise{
			*models.NewExercise("Warm Up Ride").WithDuration(10),
			*models.NewExercise("Hill Intervals").WithDuration(30),
			*models.NewExercise("Cool Down").WithDuration(10),
		}},
		{5, models.WorkoutStrength, "Leg Day", 55, 380, "Hit a new PR on deadlifts!", []models.Exercise{
			*models.NewExercise("Squats").WithSetsReps(5, 8).WithWeight(185),
			*models.NewExercise("Deadlifts").WithSetsReps(4, 6).WithWeight(225),
			*models.NewExercise("Leg Press").WithSetsReps(3, 12).WithWeight(320),
			*models.NewExercise("Calf Raises").WithSetsReps(4, 15).WithWeight(100),
		}},
		{6, models.WorkoutRunning, "Interval Training", 40, 450, "", []models.Exercise{
			*models.NewExercise("Warm Up Jog").WithDuration(5),
			*models.NewExercise("Sprint Intervals").WithDuration(25),
			*models.NewExercise("Cool Down").WithDuration(10),
		}},
		{7, models.WorkoutSwimming, "Lap Training", 45, 350, "", []models.Exercise{
			*models.NewExercise("Freestyle Laps").WithDuration(20),
			*models.NewExercise("Backstroke").WithDuration(15),
			*models.NewExercise("Butterfly").WithDuration(10),
		}},
		{8, models.WorkoutSports, "Basketball Game", 90, 650, "Great game with friends!", []models.Exercise{
			*models.NewExercise("Full Court Game").WithDuration(90),
		}},
		{9, models.WorkoutYoga, "Morning Stretch", 30, 90, "", []models.Exercise{
			*models.NewExercise("Gentle Flow").WithDuration(20),
			*models.NewExercise("Meditation").WithDuration(10),
		}},
		{10, models.WorkoutStrength, "Full Body Circuit", 40, 340, "", []models.Exercise{
			*models.NewExercise("Push Ups").WithSetsReps(3, 20),
			*models.NewExercise("Pull Ups").WithSetsReps(3, 10),
			*models.NewExercise("Lunges").WithSetsReps(3, 12),
			*models.NewExercise("Plank").WithSets(3).WithDuration(1),
		}},
		{11, models.WorkoutCardio, "Treadmill Session", 30, 280, "", []models.Exercise{
			*models.NewExercise("Incline Walk").WithDuration(15),
			*models.NewExercise("Jog").WithDuration(15),
		}},
		{12, models.WorkoutHIIT, "Core Crusher", 20, 220, "", []models.Exercise{
			*models.NewExercise("Russian Twists").WithSetsReps(4, 20),
			*models.NewExercise("Bicycle Crunches").WithSetsReps(4, 30),
			*models.NewExercise("Leg Raises").WithSetsReps(4, 15),
		}},
		{13, models.WorkoutCycling, "Endurance Ride", 75, 580, "Covered 25 miles today!", []models.Exercise{
			*models.NewExercise("Steady State Cycling").WithDuration(75),
		}},
		{14, models.WorkoutRunning, "Recovery Run", 25, 200, "", []models.Exercise{
			*models.NewExercise("Easy Pace Run").WithDuration(25),
		}},
	}

	workouts := make([]models.Workout, 0, len(seeds))
	for _, s := range seeds {
		w := models.NewWorkout(s.wType, s.name, s.duration).
			WithCalories(s.calories).
			WithDate(date(s.daysAgo))
		if s.notes != "" {
			w.WithNotes(s.notes)
		}
		w.Exercises = s.exercises
		workouts = append(workouts, *w)
	}

	f := func(v float64) *float64 { return &v }

	profile := &models.UserProfile{
		Name:         "Alex Johnson",
		Weight:       175,
		TargetWeight: 165,
		WeeklyGoal:   5,
	}

	measurements := []models.Measurement{
		{Date: date(0), Weight: 175, BodyFat: f(21), Chest: f(40.5), Waist: f(33), Hips: f(37.5)},
		{Date: date(7), Weight: 176, BodyFat: f(21.5), Chest: f(40), Waist: f(33.5), Hips: f(38)},
		{Date: date(14), Weight: 178, BodyFat: f(22), Chest: f(40), Waist: f(34), Hips: f(38)},
	}
	profile.Measurements = measurements

	records := []models.PersonalRecord{
		*models.NewPersonalRecord("Deadlift", 225, "lbs", date(5)).WithPreviousBest(205),
		*models.NewPersonalRecord("5K Run", 28, "min", date(1)).WithPreviousBest(30),
		*models.NewPersonalRecord("Plank Hold", 180, "sec", date(14)).WithPreviousBest(150),
		*models.NewPersonalRecord("Bench Press", 135, "lbs", date(0)).WithPreviousBest(125),
		*models.NewPersonalRecord("Cycling Distance", 25, "miles", date(13)).WithPreviousBest(22),
	}

	return Snapshot{
		Workouts:     workouts,
		Profile:      profile,
		Measurements: measurements,
		Records:      records,
	}
}
