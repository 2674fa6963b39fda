// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, and delete subcommands with exercise specs.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	workoutDuration  int
	workoutCalories  int
	workoutDate      string
	workoutNotes     string
	workoutExercises []string
	workoutType      string
	workoutLimit     int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions with exercises.

WORKFLOW:

  1. Log a workout:    fittrack workout add strength "Leg Day" -d 55
  2. See your history: fittrack workout list
  3. Remove a mistake: fittrack workout delete abc123

EXERCISES:

  Attach exercises with repeated --exercise flags. The spec format is
  name:SETSxREPS[@WEIGHT] for rep work or name:MINUTESmin for timed work:

    --exercise "Squats:5x8@185"       5 sets of 8 at 185 lbs
    --exercise "Tricep Dips:3x12"     3 sets of 12, bodyweight
    --exercise "5K Run:28min"         28 minutes
    --exercise "Plank:3x1min"         3 timed sets of 1 minute

CALORIES:

  When --calories is omitted, calories are estimated from duration at
  8 calories per minute.

Valid workout types: strength, cardio, yoga, hiit, cycling, running,
swimming, sports.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <type> <name>",
	Short: "Log a new workout",
	Long: `Log a new workout session.

Examples:
  fittrack workout add running "Morning Run" -d 35
  fittrack workout add strength "Leg Day" -d 55 --calories 380 \
      --exercise "Squats:5x8@185" --exercise "Deadlifts:4x6@225"
  fittrack workout add yoga "Flexibility Flow" -d 60 --date 2026-08-27`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wType := args[0]
		if !models.IsValidWorkoutType(wType) {
			return fmt.Errorf("unknown workout type: %s (valid: %s)", wType, strings.Join(typeNames(), ", "))
		}

		w := models.NewWorkout(models.WorkoutType(wType), args[1], workoutDuration)
		if workoutCalories > 0 {
			w.WithCalories(workoutCalories)
		}
		if workoutDate != "" {
			w.WithDate(workoutDate)
		}
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}
		for _, spec := range workoutExercises {
			ex, err := parseExercise(spec)
			if err != nil {
				return err
			}
			w.WithExercise(*ex)
		}

		stored, err := controller.AddWorkout(cmd.Context(), *w)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s workout %q", stored.Type, stored.Name)
		fmt.Printf("  ID: %s\n", stored.ID.String()[:8])
		fmt.Printf("  Duration: %d min, %d cal\n", stored.Duration, stored.Calories)
		if len(stored.Exercises) > 0 {
			fmt.Printf("  Exercises: %d\n", len(stored.Exercises))
		}

		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		var shown int
		faint := color.New(color.Faint)
		for _, w := range controller.Workouts() {
			if workoutType != "" && string(w.Type) != workoutType {
				continue
			}
			notes := ""
			if w.Notes != nil && *w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.Date),
				padRight(string(w.Type), 10),
				padRight(w.Name, 22),
				fmt.Sprintf("%3d min %4d cal", w.Duration, w.Calories),
				notes)
			shown++
			if workoutLimit > 0 && shown >= workoutLimit {
				break
			}
		}

		if shown == 0 {
			fmt.Println("No workouts found.")
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveWorkoutID(cmd, args[0])
		if err != nil {
			return err
		}

		if err := controller.DeleteWorkout(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %s", args[0])
		return nil
	},
}

// resolveWorkoutID matches a full UUID or unambiguous prefix against
// the current snapshot.
func resolveWorkoutID(cmd *cobra.Command, idOrPrefix string) (uuid.UUID, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, nil
	}

	if err := controller.Refresh(cmd.Context()); err != nil {
		return uuid.Nil, err
	}

	var match uuid.UUID
	for _, w := range controller.Workouts() {
		if strings.HasPrefix(w.ID.String(), idOrPrefix) {
			if match != uuid.Nil {
				return uuid.Nil, fmt.Errorf("ambiguous workout ID prefix: %s", idOrPrefix)
			}
			match = w.ID
		}
	}
	if match == uuid.Nil {
		return uuid.Nil, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	return match, nil
}

// parseExercise parses an exercise spec of the form
// name[:SETSxREPS[@WEIGHT] | :MINUTESmin | :SETSxMINUTESmin].
func parseExercise(spec string) (*models.Exercise, error) {
	name, detail, hasDetail := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("invalid exercise spec: %q", spec)
	}

	ex := models.NewExercise(name)
	if !hasDetail || strings.TrimSpace(detail) == "" {
		return ex, nil
	}
	detail = strings.TrimSpace(detail)

	timed := strings.HasSuffix(detail, "min")
	detail = strings.TrimSuffix(detail, "min")

	var weight float64
	if base, w, hasWeight := strings.Cut(detail, "@"); hasWeight {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid weight in exercise spec: %q", spec)
		}
		weight = v
		detail = base
	}

	if first, second, hasX := strings.Cut(detail, "x"); hasX {
		sets, err := strconv.Atoi(first)
		if err != nil || sets <= 0 {
			return nil, fmt.Errorf("invalid sets in exercise spec: %q", spec)
		}
		n, err := strconv.Atoi(second)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid reps in exercise spec: %q", spec)
		}
		if timed {
			ex.WithSets(sets).WithDuration(n)
		} else {
			ex.WithSetsReps(sets, n)
		}
	} else {
		n, err := strconv.Atoi(detail)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid exercise spec: %q", spec)
		}
		if timed {
			ex.WithDuration(n)
		} else {
			ex.WithSets(n)
		}
	}

	if weight > 0 {
		ex.WithWeight(weight)
	}
	return ex, nil
}

func typeNames() []string {
	names := make([]string, len(models.AllWorkoutTypes))
	for i, t := range models.AllWorkoutTypes {
		names[i] = string(t)
	}
	return names
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutAddCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")
	workoutAddCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "calories burned (default: duration x 8)")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD, default: today)")
	workoutAddCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "workout notes")
	workoutAddCmd.Flags().StringArrayVarP(&workoutExercises, "exercise", "e", nil, "exercise spec (repeatable)")
	_ = workoutAddCmd.MarkFlagRequired("duration")

	workoutListCmd.Flags().StringVarP(&workoutType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
