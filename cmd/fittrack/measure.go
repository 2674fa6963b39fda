// ABOUTME: CLI commands for body measurements.
// ABOUTME: Supports add and list subcommands over the measurement timeline.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	measureBodyFat float64
	measureChest   float64
	measureWaist   float64
	measureHips    float64
	measureDate    string
	measureLimit   int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Track body measurements",
	Long: `Track body measurements over time.

Weight is the only required value; body fat and girth measurements are
optional and stored only when given.

EXAMPLES:

  fittrack measure add 175
  fittrack measure add 175 --body-fat 21 --chest 40.5 --waist 33
  fittrack measure add 176 --date 2026-08-22
  fittrack measure list`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a body measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		m := models.Measurement{Date: measureDate, Weight: weight}
		if cmd.Flags().Changed("body-fat") {
			m.BodyFat = &measureBodyFat
		}
		if cmd.Flags().Changed("chest") {
			m.Chest = &measureChest
		}
		if cmd.Flags().Changed("waist") {
			m.Waist = &measureWaist
		}
		if cmd.Flags().Changed("hips") {
			m.Hips = &measureHips
		}

		if err := controller.AddMeasurement(cmd.Context(), m); err != nil {
			return fmt.Errorf("failed to record measurement: %w", err)
		}

		color.Green("✓ Recorded measurement: %.1f lbs", weight)
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List measurements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		measurements := controller.Measurements()
		if len(measurements) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, m := range measurements {
			if measureLimit > 0 && i >= measureLimit {
				break
			}
			line := fmt.Sprintf("%s %6.1f lbs", faint.Sprint(m.Date), m.Weight)
			if m.BodyFat != nil {
				line += fmt.Sprintf("  %4.1f%% bf", *m.BodyFat)
			}
			if m.Chest != nil {
				line += fmt.Sprintf("  chest %.1f", *m.Chest)
			}
			if m.Waist != nil {
				line += fmt.Sprintf("  waist %.1f", *m.Waist)
			}
			if m.Hips != nil {
				line += fmt.Sprintf("  hips %.1f", *m.Hips)
			}
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	measureAddCmd.Flags().Float64Var(&measureBodyFat, "body-fat", 0, "body fat percentage")
	measureAddCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest in inches")
	measureAddCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist in inches")
	measureAddCmd.Flags().Float64Var(&measureHips, "hips", 0, "hips in inches")
	measureAddCmd.Flags().StringVar(&measureDate, "date", "", "measurement date (YYYY-MM-DD, default: today)")

	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max number of results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	rootCmd.AddCommand(measureCmd)
}
