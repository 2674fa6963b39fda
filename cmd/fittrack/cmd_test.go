// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Covers exercise spec parsing, formatting helpers, and guest-mode runs.
package main

import (
	"bytes"
	"testing"
)

func TestParseExercise(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
		check   func(t *testing.T)
	}{
		{name: "name only", spec: "Tricep Dips"},
		{name: "sets and reps", spec: "Squats:5x8"},
		{name: "sets reps weight", spec: "Squats:5x8@185"},
		{name: "timed", spec: "5K Run:28min"},
		{name: "timed sets", spec: "Plank:3x1min"},
		{name: "bare sets", spec: "Pull Ups:3"},
		{name: "empty name", spec: ":4x10", wantErr: true},
		{name: "bad sets", spec: "Squats:zerox8", wantErr: true},
		{name: "bad reps", spec: "Squats:5xmany", wantErr: true},
		{name: "bad weight", spec: "Squats:5x8@heavy", wantErr: true},
		{name: "zero minutes", spec: "Run:0min", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := parseExercise(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseExercise(%q) expected error, got %+v", tt.spec, ex)
				}
				return
			}
			if err != nil {
				t.Errorf("parseExercise(%q) unexpected error: %v", tt.spec, err)
			}
		})
	}
}

func TestParseExerciseValues(t *testing.T) {
	ex, err := parseExercise("Squats:5x8@185")
	if err != nil {
		t.Fatalf("parseExercise failed: %v", err)
	}
	if ex.Name != "Squats" {
		t.Errorf("Name = %q, want Squats", ex.Name)
	}
	if ex.Sets == nil || *ex.Sets != 5 || ex.Reps == nil || *ex.Reps != 8 {
		t.Errorf("sets/reps = %+v", ex)
	}
	if ex.Weight == nil || *ex.Weight != 185 {
		t.Errorf("weight = %+v", ex.Weight)
	}

	timed, err := parseExercise("Plank:3x1min")
	if err != nil {
		t.Fatalf("parseExercise failed: %v", err)
	}
	if timed.Sets == nil || *timed.Sets != 3 {
		t.Errorf("timed sets = %+v", timed.Sets)
	}
	if timed.Duration == nil || *timed.Duration != 1 {
		t.Errorf("timed duration = %+v", timed.Duration)
	}
	if timed.Reps != nil {
		t.Error("timed exercise should have no reps")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string no truncation", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world this is long", 10, "hello w..."},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"needs padding", "hi", 5, "hi   "},
		{"exact length", "hello", 5, "hello"},
		{"longer than length", "hello world", 5, "hello world"},
		{"empty string", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "fittrack" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "fittrack")
	}
	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("Expected --verbose persistent flag")
	}
}

func TestWorkoutCmdSubcommands(t *testing.T) {
	expected := map[string]bool{"add": false, "list": false, "delete": false}
	for _, cmd := range workoutCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Expected workout subcommand %q not found", name)
		}
	}
}

func TestWorkoutAddCmdFlags(t *testing.T) {
	for _, flag := range []string{"duration", "calories", "date", "notes", "exercise"} {
		if workoutAddCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on workout add command", flag)
		}
	}
}

func TestWorkoutListCmdFlags(t *testing.T) {
	typeFlag := workoutListCmd.Flags().Lookup("type")
	if typeFlag == nil {
		t.Error("Expected --type flag on workout list command")
	}

	limitFlag := workoutListCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on workout list command")
	}
	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestMeasureAddCmdFlags(t *testing.T) {
	for _, flag := range []string{"body-fat", "chest", "waist", "hips", "date"} {
		if measureAddCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on measure add command", flag)
		}
	}
}

func TestRecordAddCmdFlags(t *testing.T) {
	if recordAddCmd.Flags().Lookup("previous") == nil {
		t.Error("Expected --previous flag on record add command")
	}
	if recordAddCmd.Flags().Lookup("date") == nil {
		t.Error("Expected --date flag on record add command")
	}
}

func TestProfileSetCmdFlags(t *testing.T) {
	for _, flag := range []string{"name", "weight", "target", "goal"} {
		if profileSetCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected --%s flag on profile set command", flag)
		}
	}
}

func TestCommandAliases(t *testing.T) {
	aliases := map[*[]string]string{
		&workoutCmd.Aliases:       "w",
		&measureCmd.Aliases:       "m",
		&recordCmd.Aliases:        "pr",
		&workoutListCmd.Aliases:   "ls",
		&workoutDeleteCmd.Aliases: "rm",
	}
	for list, want := range aliases {
		found := false
		for _, alias := range *list {
			if alias == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected alias %q", want)
		}
	}
}

func TestRegisteredCommands(t *testing.T) {
	expected := map[string]bool{
		"workout": false, "measure": false, "record": false,
		"profile": false, "stats": false, "watch": false,
		"export": false, "push": false, "mcp": false,
		"login": false, "logout": false, "whoami": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

// setupGuestCLI points config at an empty temp dir so commands run in
// guest mode against the seeded in-memory store.
func setupGuestCLI(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
}

func TestStatsCmdGuestMode(t *testing.T) {
	setupGuestCLI(t)

	rootCmd.SetArgs([]string{"stats"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("stats command failed: %v", err)
	}

	// Guest mode seeds 15 workouts over 15 consecutive days.
	st := controller.Stats()
	if st.TotalWorkouts != 15 {
		t.Errorf("TotalWorkouts = %d, want 15", st.TotalWorkouts)
	}
	if st.CurrentStreak != 15 {
		t.Errorf("CurrentStreak = %d, want 15", st.CurrentStreak)
	}
}

func TestWorkoutAddCmdGuestMode(t *testing.T) {
	setupGuestCLI(t)

	workoutDuration = 0
	workoutCalories = 0
	workoutDate = ""
	workoutNotes = ""
	workoutExercises = nil

	rootCmd.SetArgs([]string{"workout", "add", "running", "Tempo Run", "-d", "45"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("workout add command failed: %v", err)
	}

	if err := controller.Refresh(rootCmd.Context()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	workouts := controller.Workouts()
	if len(workouts) != 16 {
		t.Fatalf("Expected 16 workouts after add, got %d", len(workouts))
	}
	if workouts[0].Name != "Tempo Run" {
		t.Errorf("newest workout = %q, want Tempo Run", workouts[0].Name)
	}
	if workouts[0].Calories != 360 {
		t.Errorf("estimated calories = %d, want 360", workouts[0].Calories)
	}
}

func TestWorkoutAddCmdInvalidType(t *testing.T) {
	setupGuestCLI(t)

	workoutDuration = 0

	rootCmd.SetArgs([]string{"workout", "add", "parkour", "Nope", "-d", "30"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for invalid workout type")
	}
}

func TestWorkoutDeleteCmdNotFound(t *testing.T) {
	setupGuestCLI(t)

	rootCmd.SetArgs([]string{"workout", "delete", "ffffffff"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown workout prefix")
	}
}

func TestMeasureAddCmdGuestMode(t *testing.T) {
	setupGuestCLI(t)

	measureDate = ""

	rootCmd.SetArgs([]string{"measure", "add", "174.5", "--body-fat", "20.8"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("measure add command failed: %v", err)
	}

	if err := controller.Refresh(rootCmd.Context()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	measurements := controller.Measurements()
	if len(measurements) != 4 {
		t.Fatalf("Expected 4 measurements after add, got %d", len(measurements))
	}
	if measurements[0].Weight != 174.5 {
		t.Errorf("newest measurement weight = %.1f, want 174.5", measurements[0].Weight)
	}
}

func TestMeasureAddCmdInvalidWeight(t *testing.T) {
	setupGuestCLI(t)

	rootCmd.SetArgs([]string{"measure", "add", "not_a_number"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for invalid weight")
	}
}

func TestRecordAddCmdGuestMode(t *testing.T) {
	setupGuestCLI(t)

	recordDate = ""

	rootCmd.SetArgs([]string{"record", "add", "Squat", "275", "lbs", "--previous", "265"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("record add command failed: %v", err)
	}

	if err := controller.Refresh(rootCmd.Context()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	records := controller.Records()
	if len(records) != 6 {
		t.Fatalf("Expected 6 records after add, got %d", len(records))
	}
	if records[0].Name != "Squat" {
		t.Errorf("newest record = %q, want Squat", records[0].Name)
	}
}

func TestProfileSetCmdRejectsZeroGoal(t *testing.T) {
	setupGuestCLI(t)

	profileGoal = 0

	rootCmd.SetArgs([]string{"profile", "set", "--goal", "0"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for zero weekly goal")
	}
}

func TestExportCmdGuestMode(t *testing.T) {
	setupGuestCLI(t)

	exportOutput = ""

	rootCmd.SetArgs([]string{"export"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("export command failed: %v", err)
	}
}

func TestPushCmdRequiresRemote(t *testing.T) {
	setupGuestCLI(t)

	rootCmd.SetArgs([]string{"push"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for push in guest mode")
	}
}

func TestLoginThenWhoami(t *testing.T) {
	setupGuestCLI(t)

	rootCmd.SetArgs([]string{"login", "alex@example.com"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("login command failed: %v", err)
	}

	rootCmd.SetArgs([]string{"whoami"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("whoami command failed: %v", err)
	}

	rootCmd.SetArgs([]string{"logout"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("logout command failed: %v", err)
	}

	rootCmd.SetArgs([]string{"whoami"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected whoami to fail after logout")
	}
}

func TestLongDescriptions(t *testing.T) {
	cmds := []struct {
		name string
		long string
	}{
		{"root", rootCmd.Long},
		{"workout", workoutCmd.Long},
		{"measure", measureCmd.Long},
		{"record", recordCmd.Long},
		{"profile", profileCmd.Long},
		{"stats", statsCmd.Long},
		{"watch", watchCmd.Long},
		{"export", exportCmd.Long},
		{"push", pushCmd.Long},
		{"mcp", mcpCmd.Long},
	}
	for _, c := range cmds {
		if c.long == "" {
			t.Errorf("Expected %s command Long to be non-empty", c.name)
		}
	}
}
