// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Wires config, store, notifier, and controller via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/auth"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/notify"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/sync"
)

var (
	verbose bool

	logger        *zap.Logger
	cfg           *config.Config
	pool          *pgxpool.Pool
	dataStore     store.Store
	notifier      notify.Notifier
	controller    *sync.Controller
	currentUserID string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker with cross-device sync",
	Long: `Fittrack tracks workouts, body measurements, and personal records,
and derives streaks and weekly goal progress from them.

MODES:

  Guest          No account needed. Runs against seeded in-memory demo
                 data so you can explore every command. Changes last for
                 one invocation only.
  Authenticated  Set DATABASE_URL (Postgres) and run 'fittrack login'.
                 Your data is stored per-user and synced across
                 sessions. Set REDIS_URL to hear writes from other
                 devices as they happen.

QUICK START:

  $ fittrack stats                            # Streak, totals, weekly goal
  $ fittrack workout add running "5K" -d 28   # Log a run
  $ fittrack workout list                     # See recent workouts
  $ fittrack measure add 175 --body-fat 21    # Log a measurement
  $ fittrack record add Deadlift 225 lbs      # Log a personal record

SYNC:

  $ fittrack login alex@example.com   # Create a session
  $ fittrack push                     # Copy demo data to your account
  $ fittrack watch                    # Live view, re-renders on changes

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that manage identity or config don't need a store.
		switch cmd.Name() {
		case "version", "help", "login", "logout", "whoami", "completion":
			return nil
		}
		return initApp(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

// initApp selects the mode from config and builds the store, notifier,
// and controller the commands share.
func initApp(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	} else {
		logger = zap.NewNop()
	}

	ctx := cmd.Context()
	userID := ""

	if cfg.Remote() {
		session, err := auth.Current()
		if err != nil {
			return err
		}
		userID = session.UserID

		pool, err = store.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		if err := store.InitSchema(ctx, pool); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		dataStore = store.NewPostgres(pool, userID, logger)

		if cfg.RedisURL != "" {
			notifier, err = notify.NewRedis(ctx, cfg.RedisURL, logger)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
		} else {
			notifier = notify.Nop{}
		}
	} else {
		dataStore = store.NewLocal()
		notifier = notify.Nop{}
	}

	opts := []sync.Option{}
	if d := cfg.Debounce(); d > 0 {
		opts = append(opts, sync.WithDebounce(d))
	}
	currentUserID = userID
	controller = sync.New(dataStore, notifier, userID, logger, opts...)
	return nil
}

func closeApp() error {
	if notifier != nil {
		_ = notifier.Close()
	}
	if dataStore != nil {
		_ = dataStore.Close()
	}
	if pool != nil {
		pool.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
