// ABOUTME: CLI commands for session management.
// ABOUTME: login creates a session; logout removes it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in",
	Long: `Create a session for the given email.

The session scopes all database rows and notification channels to your
user. The same email maps to the same account on every machine.

Authenticated mode also needs DATABASE_URL pointing at Postgres; set
REDIS_URL as well to hear writes from other devices live.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := auth.Login(args[0])
		if err != nil {
			return err
		}

		color.Green("✓ Signed in as %s", session.Email)
		fmt.Printf("  User ID: %s\n", session.UserID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Logout(); err != nil {
			return err
		}
		color.Green("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := auth.Current()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", session.Email, session.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
