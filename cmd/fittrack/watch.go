// ABOUTME: CLI command for a live statistics view.
// ABOUTME: Subscribes to change events and re-renders on every refresh.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/sync"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live statistics view",
	Long: `Watch your statistics update live.

Subscribes to change notifications and refetches whenever your data
changes, so writes from other devices show up within moments. In guest
mode there are no remote peers, so the view stays static.

Press Ctrl-C to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		render := func() {
			// Clear screen and re-draw, terminal-dashboard style.
			fmt.Print("\033[2J\033[H")
			printStats()
			color.New(color.Faint).Println("\nWatching for changes. Ctrl-C to exit.")
		}

		opts := []sync.Option{sync.WithOnRefresh(render)}
		if d := cfg.Debounce(); d > 0 {
			opts = append(opts, sync.WithDebounce(d))
		}
		watcher := sync.New(dataStore, notifier, currentUserID, logger, opts...)

		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigChan:
		case <-ctx.Done():
		}
		cancel()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
