// ABOUTME: CLI command for exporting fitness data.
// ABOUTME: Writes the full snapshot as JSON for backup or inspection.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
)

var exportOutput string

// exportEnvelope is the JSON backup format.
type exportEnvelope struct {
	Version      string                  `json:"version"`
	ExportedAt   string                  `json:"exported_at"`
	Tool         string                  `json:"tool"`
	Workouts     []models.Workout        `json:"workouts"`
	Profile      *models.UserProfile     `json:"profile"`
	Measurements []models.Measurement    `json:"measurements"`
	Records      []models.PersonalRecord `json:"personal_records"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export fitness data as JSON",
	Long: `Export all fitness data as JSON.

The export contains workouts with their exercises, the profile, the
measurement timeline, and personal records.

EXAMPLES:

  fittrack export                      # Print to stdout
  fittrack export -o backup.json       # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Refresh(cmd.Context()); err != nil {
			return err
		}

		env := exportEnvelope{
			Version:      "1.0",
			ExportedAt:   time.Now().UTC().Format(time.RFC3339),
			Tool:         "fittrack",
			Workouts:     controller.Workouts(),
			Profile:      controller.Profile(),
			Measurements: controller.Measurements(),
			Records:      controller.Records(),
		}

		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
