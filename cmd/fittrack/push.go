// ABOUTME: CLI command for seeding an account from the guest demo data.
// ABOUTME: Copies the in-memory snapshot into the configured database.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/store"
)

var pushDryRun bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Copy the guest demo data into your account",
	Long: `Copy the guest-mode demonstration data into your account.

Useful right after signing up: your account starts with the same
workouts, profile, measurements, and records the guest mode shows, so
every screen has something on it.

Requires authenticated mode (DATABASE_URL plus 'fittrack login').
Existing account data is kept; the demo rows are added alongside it.

USAGE:

  fittrack push --dry-run   # Preview what would be copied
  fittrack push             # Perform the copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Remote() {
			return fmt.Errorf("push requires a configured database: set DATABASE_URL and run 'fittrack login'")
		}

		ctx := cmd.Context()
		seed := store.SeedSnapshot()

		if pushDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			fmt.Printf("Would copy %d workouts, %d measurements, %d records, and the demo profile.\n",
				len(seed.Workouts), len(seed.Measurements), len(seed.Records))
			return nil
		}

		for _, w := range seed.Workouts {
			if _, err := controller.AddWorkout(ctx, w); err != nil {
				return fmt.Errorf("push workout %q: %w", w.Name, err)
			}
		}
		if seed.Profile != nil {
			if err := controller.UpdateProfile(ctx, *seed.Profile); err != nil {
				return fmt.Errorf("push profile: %w", err)
			}
		}
		for _, m := range seed.Measurements {
			if err := controller.AddMeasurement(ctx, m); err != nil {
				return fmt.Errorf("push measurement %s: %w", m.Date, err)
			}
		}
		for _, r := range seed.Records {
			if _, err := controller.AddPersonalRecord(ctx, r); err != nil {
				return fmt.Errorf("push record %q: %w", r.Name, err)
			}
		}

		color.Green("✓ Copied %d workouts, %d measurements, and %d records",
			len(seed.Workouts), len(seed.Measurements), len(seed.Records))
		return nil
	},
}

func init() {
	pushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "preview without making changes")
	rootCmd.AddCommand(pushCmd)
}
