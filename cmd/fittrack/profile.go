// ABOUTME: CLI commands for the user profile.
// ABOUTME: Supports show and set subcommands including the weekly goal.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	profileName   string
	profileWeight float64
	profileTarget float64
	profileGoal   int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Show or update your profile.

The weekly goal drives the weekly progress statistic: it is the number
of workouts you aim to complete each week, counted from Sunday.

EXAMPLES:

  fittrack profile show
  fittrack profile set --name "Alex Johnson" --weight 175 --target 165 --goal 5
  fittrack profile set --goal 4`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		p := controller.Profile()
		if p == nil {
			fmt.Println("No profile yet. Create one with 'fittrack profile set'.")
			return nil
		}

		fmt.Printf("Name:          %s\n", p.Name)
		fmt.Printf("Weight:        %.1f lbs\n", p.Weight)
		fmt.Printf("Target weight: %.1f lbs\n", p.TargetWeight)
		fmt.Printf("Weekly goal:   %d workouts\n", p.WeeklyGoal)
		if latest := p.LatestMeasurement(); latest != nil {
			fmt.Printf("Last measured: %s (%.1f lbs)\n", latest.Date, latest.Weight)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		// Start from the existing profile so partial updates keep the
		// other fields.
		p := models.UserProfile{}
		if existing := controller.Profile(); existing != nil {
			p = *existing
		}

		if cmd.Flags().Changed("name") {
			p.Name = profileName
		}
		if cmd.Flags().Changed("weight") {
			p.Weight = profileWeight
		}
		if cmd.Flags().Changed("target") {
			p.TargetWeight = profileTarget
		}
		if cmd.Flags().Changed("goal") {
			if profileGoal < 1 {
				return fmt.Errorf("weekly goal must be at least 1")
			}
			p.WeeklyGoal = profileGoal
		}

		if err := controller.UpdateProfile(cmd.Context(), p); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "current weight in pounds")
	profileSetCmd.Flags().Float64Var(&profileTarget, "target", 0, "target weight in pounds")
	profileSetCmd.Flags().IntVar(&profileGoal, "goal", 0, "workouts per week goal")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
