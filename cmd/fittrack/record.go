// ABOUTME: CLI commands for personal records.
// ABOUTME: Supports add and list subcommands with improvement display.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var (
	recordPrevious float64
	recordDate     string
	recordLimit    int
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"pr"},
	Short:   "Track personal records",
	Long: `Track personal records.

Records carry a value and a unit. For time units (min, sec) a lower
value beats the previous best; for everything else higher wins.

EXAMPLES:

  fittrack record add Deadlift 225 lbs --previous 205
  fittrack record add "5K Run" 28 min --previous 30
  fittrack record list`,
}

var recordAddCmd = &cobra.Command{
	Use:   "add <name> <value> <unit>",
	Short: "Record a new personal record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		r := models.NewPersonalRecord(args[0], value, args[2], recordDate)
		if cmd.Flags().Changed("previous") {
			r.WithPreviousBest(recordPrevious)
		}

		stored, err := controller.AddPersonalRecord(cmd.Context(), *r)
		if err != nil {
			return fmt.Errorf("failed to record PR: %w", err)
		}

		color.Green("✓ New record: %s %.1f %s", stored.Name, stored.Value, stored.Unit)
		if stored.PreviousBest != nil {
			fmt.Printf("  Previous best: %.1f %s\n", *stored.PreviousBest, stored.Unit)
		}
		return nil
	},
}

var recordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List personal records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		records := controller.Records()
		if len(records) == 0 {
			fmt.Println("No personal records found.")
			return nil
		}

		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)
		for i, r := range records {
			if recordLimit > 0 && i >= recordLimit {
				break
			}
			improved := ""
			if r.PreviousBest != nil {
				arrow := "↑"
				if r.LowerIsBetter() {
					arrow = "↓"
				}
				if r.Improved() {
					improved = green.Sprintf("  %s from %.1f", arrow, *r.PreviousBest)
				} else {
					improved = faint.Sprintf("  was %.1f", *r.PreviousBest)
				}
			}
			fmt.Printf("%s %s %7.1f %s%s\n",
				faint.Sprint(r.Date),
				padRight(r.Name, 18),
				r.Value,
				padRight(r.Unit, 5),
				improved)
		}

		return nil
	},
}

func init() {
	recordAddCmd.Flags().Float64Var(&recordPrevious, "previous", 0, "previous best value")
	recordAddCmd.Flags().StringVar(&recordDate, "date", "", "record date (YYYY-MM-DD, default: today)")

	recordListCmd.Flags().IntVarP(&recordLimit, "limit", "n", 20, "max number of results")

	recordCmd.AddCommand(recordAddCmd)
	recordCmd.AddCommand(recordListCmd)
	rootCmd.AddCommand(recordCmd)
}
