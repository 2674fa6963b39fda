// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the sync controller.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fitness data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout      Log a workout with optional exercises
  list_workouts    List recent workouts
  delete_workout   Delete a workout by ID
  get_stats        Totals, streak, and weekly goal progress
  log_measurement  Record a body measurement
  log_record       Record a personal record
  update_profile   Update name, weight, target, weekly goal

AVAILABLE RESOURCES:

  fitness://stats     Derived statistics
  fitness://recent    Last 10 workouts
  fitness://profile   Profile and measurement history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(controller)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
