// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Runs handlers against a controller over the in-memory store.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/notify"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/harperreed/fittrack/internal/sync"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	ctrl := sync.New(store.NewEmptyLocal(), notify.Nop{}, "", nil)
	server, err := NewServer(ctrl)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.ctrl == nil {
		t.Error("Expected non-nil controller")
	}
}

func TestHandleLogWorkout(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logWorkoutInput
		wantErr   bool
		errSubstr string
		wantCals  int
	}{
		{
			name: "workout with explicit calories",
			input: logWorkoutInput{
				WorkoutType: "strength",
				Name:        "Upper Body Power",
				Duration:    45,
				Calories:    320,
			},
			wantCals: 320,
		},
		{
			name: "calories estimated from duration",
			input: logWorkoutInput{
				WorkoutType: "running",
				Name:        "Tempo Run",
				Duration:    30,
			},
			wantCals: 240,
		},
		{
			name: "workout with exercises and notes",
			input: logWorkoutInput{
				WorkoutType: "hiit",
				Name:        "Tabata Blast",
				Duration:    25,
				Notes:       "Heart rate peaked at 175 bpm.",
				Exercises: []exerciseInput{
					{Name: "Burpees", Sets: 4, Reps: 20},
					{Name: "Plank", Sets: 3, Duration: 1},
				},
			},
			wantCals: 200,
		},
		{
			name: "invalid workout type",
			input: logWorkoutInput{
				WorkoutType: "parkour",
				Name:        "Nope",
				Duration:    30,
			},
			wantErr:   true,
			errSubstr: "unknown workout type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error %q should contain %q", err.Error(), tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.Calories != tt.wantCals {
				t.Errorf("Calories = %d, want %d", output.Calories, tt.wantCals)
			}
			if output.ID == "" {
				t.Error("Expected non-empty ID")
			}
			if output.Message == "" {
				t.Error("Expected non-empty Message")
			}
		})
	}
}

func TestHandleListWorkouts(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	for _, in := range []logWorkoutInput{
		{WorkoutType: "running", Name: "Morning Run", Duration: 35},
		{WorkoutType: "strength", Name: "Leg Day", Duration: 55},
		{WorkoutType: "running", Name: "Recovery Run", Duration: 25},
	} {
		if _, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, in); err != nil {
			t.Fatalf("log %s: %v", in.Name, err)
		}
	}

	_, output, err := server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	all, ok := output.([]models.Workout)
	if !ok {
		t.Fatalf("Expected workout slice, got %T", output)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 workouts, got %d", len(all))
	}

	_, output, err = server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{WorkoutType: "running"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	runs, ok := output.([]models.Workout)
	if !ok {
		t.Fatalf("Expected workout slice, got %T", output)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 running workouts, got %d", len(runs))
	}
}

func TestHandleListWorkoutsEmpty(t *testing.T) {
	server := setupTestServer(t)

	_, output, err := server.handleListWorkouts(context.Background(), &mcp.CallToolRequest{}, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	msg, ok := output.(map[string]interface{})
	if !ok || msg["message"] == "" {
		t.Errorf("Expected message map for empty list, got %v", output)
	}
}

func TestHandleDeleteWorkoutByPrefix(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, logged, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{
		WorkoutType: "cycling", Name: "Hill Climbs", Duration: 50,
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	_, output, err := server.handleDeleteWorkout(ctx, &mcp.CallToolRequest{}, deleteWorkoutInput{ID: logged.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	_, list, err := server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, ok := list.([]models.Workout); ok {
		t.Error("Expected workout to be deleted")
	}
}

func TestHandleDeleteWorkoutNotFound(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleDeleteWorkout(context.Background(), &mcp.CallToolRequest{}, deleteWorkoutInput{
		ID: "deadbeef",
	})
	if err == nil {
		t.Error("Expected error for nonexistent workout")
	}
}

func TestHandleGetStats(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	for _, in := range []logWorkoutInput{
		{WorkoutType: "strength", Name: "Upper Body", Duration: 45, Calories: 320},
		{WorkoutType: "cardio", Name: "Morning Run", Duration: 35, Calories: 380},
	} {
		if _, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, in); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	_, stats, err := server.handleGetStats(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", stats.TotalWorkouts)
	}
	if stats.TotalCalories != 700 {
		t.Errorf("TotalCalories = %d, want 700", stats.TotalCalories)
	}
	if stats.TotalMinutes != 80 {
		t.Errorf("TotalMinutes = %d, want 80", stats.TotalMinutes)
	}
}

func TestHandleLogMeasurementAndRecord(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	bf := 21.5
	_, out, err := server.handleLogMeasurement(ctx, &mcp.CallToolRequest{}, logMeasurementInput{
		Weight: 176, BodyFat: &bf,
	})
	if err != nil {
		t.Fatalf("log measurement: %v", err)
	}
	if out.Message == "" {
		t.Error("Expected non-empty message")
	}

	prev := 205.0
	_, out, err = server.handleLogRecord(ctx, &mcp.CallToolRequest{}, logRecordInput{
		Name: "Deadlift", Value: 225, Unit: "lbs", PreviousBest: &prev,
	})
	if err != nil {
		t.Fatalf("log record: %v", err)
	}
	if !strings.Contains(out.Message, "Deadlift") {
		t.Errorf("Message = %q, want Deadlift mention", out.Message)
	}
}

func TestHandleUpdateProfile(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleUpdateProfile(ctx, &mcp.CallToolRequest{}, updateProfileInput{
		Name: "Alex Johnson", Weight: 175, TargetWeight: 165, WeeklyGoal: 5,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if !strings.Contains(out.Message, "Alex Johnson") {
		t.Errorf("Message = %q, want name mention", out.Message)
	}
}

func TestHandleStatsResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleStatsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "fitness://stats" {
		t.Errorf("URI = %s, want fitness://stats", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
	if !strings.Contains(result.Contents[0].Text, "current_streak") {
		t.Error("Expected current_streak in stats resource")
	}
}

func TestHandleRecentResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{
		WorkoutType: "yoga", Name: "Flexibility Flow", Duration: 60,
	}); err != nil {
		t.Fatalf("log: %v", err)
	}

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Contents[0].URI != "fitness://recent" {
		t.Errorf("URI = %s, want fitness://recent", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "Flexibility Flow") {
		t.Error("Expected logged workout in recent resource")
	}
}

func TestHandleProfileResource(t *testing.T) {
	ctrl := sync.New(store.NewLocal(), notify.Nop{}, "", nil)
	server, err := NewServer(ctrl)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	result, err := server.handleProfileResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "Alex Johnson") {
		t.Error("Expected seeded profile in resource")
	}
}
