// ABOUTME: CLI command for derived statistics.
// ABOUTME: Prints totals, current streak, and weekly goal progress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show derived statistics",
	Long: `Show statistics derived from your workout history.

  Total workouts/calories/minutes   Lifetime sums over all workouts
  Current streak                    Consecutive days with at least one
                                    workout, ending today or yesterday
  Weekly goal                       Workouts since Sunday against your
                                    weekly goal, as a percentage`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		printStats()
		return nil
	},
}

func printStats() {
	st := controller.Stats()

	bold := color.New(color.Bold)
	bold.Println("Fitness Stats")
	fmt.Printf("  Workouts:  %d\n", st.TotalWorkouts)
	fmt.Printf("  Calories:  %d\n", st.TotalCalories)
	fmt.Printf("  Minutes:   %d\n", st.TotalMinutes)

	streak := fmt.Sprintf("%d day", st.CurrentStreak)
	if st.CurrentStreak != 1 {
		streak += "s"
	}
	if st.CurrentStreak > 0 {
		color.Green("  Streak:    %s 🔥", streak)
	} else {
		fmt.Printf("  Streak:    %s\n", streak)
	}

	if st.WeeklyGoalProgress >= 100 {
		color.Green("  This week: %d%% of goal ✓", st.WeeklyGoalProgress)
	} else {
		fmt.Printf("  This week: %d%% of goal\n", st.WeeklyGoalProgress)
	}

	if len(st.PersonalRecords) > 0 {
		fmt.Printf("  Records:   %d\n", len(st.PersonalRecords))
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
