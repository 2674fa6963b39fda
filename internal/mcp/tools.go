// ABOUTME: MCP tool implementations for fitness data.
// ABOUTME: Workout logging, stats, measurements, records, and profile tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fittrack/internal/models"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout session with optional exercises",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first, optionally filtered by type",
	}, s.handleListWorkouts)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get derived statistics: totals, current streak, weekly goal progress",
	}, s.handleGetStats)

	// log_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record a body measurement (weight plus optional body fat and girths)",
	}, s.handleLogMeasurement)

	// log_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_record",
		Description: "Record a new personal record",
	}, s.handleLogRecord)

	// update_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update the user profile (name, weight, target weight, weekly goal)",
	}, s.handleUpdateProfile)
}

// Tool input/output types

type exerciseInput struct {
	Name     string  `json:"name" jsonschema:"Exercise name"`
	Sets     int     `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps     int     `json:"reps,omitempty" jsonschema:"Reps per set"`
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight in pounds"`
	Duration int     `json:"duration,omitempty" jsonschema:"Duration in minutes"`
}

type logWorkoutInput struct {
	WorkoutType string          `json:"workout_type" jsonschema:"Type of workout (strength, cardio, yoga, hiit, cycling, running, swimming, sports)"`
	Name        string          `json:"name" jsonschema:"Workout name"`
	Duration    int             `json:"duration" jsonschema:"Duration in minutes"`
	Calories    int             `json:"calories,omitempty" jsonschema:"Calories burned; estimated from duration when omitted"`
	Date        string          `json:"date,omitempty" jsonschema:"Workout date (YYYY-MM-DD), defaults to today"`
	Notes       string          `json:"notes,omitempty" jsonschema:"Optional notes"`
	Exercises   []exerciseInput `json:"exercises,omitempty" jsonschema:"Exercises performed"`
}

type workoutOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Message  string `json:"message"`
}

type listWorkoutsInput struct {
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"Filter by workout type"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logMeasurementInput struct {
	Weight  float64  `json:"weight" jsonschema:"Body weight in pounds"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
	Chest   *float64 `json:"chest,omitempty" jsonschema:"Chest in inches"`
	Waist   *float64 `json:"waist,omitempty" jsonschema:"Waist in inches"`
	Hips    *float64 `json:"hips,omitempty" jsonschema:"Hips in inches"`
	Date    string   `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD), defaults to today"`
}

type logRecordInput struct {
	Name         string   `json:"name" jsonschema:"Record name (e.g. Deadlift)"`
	Value        float64  `json:"value" jsonschema:"Record value"`
	Unit         string   `json:"unit" jsonschema:"Unit (lbs, min, sec, miles, ...)"`
	Date         string   `json:"date,omitempty" jsonschema:"Record date (YYYY-MM-DD), defaults to today"`
	PreviousBest *float64 `json:"previous_best,omitempty" jsonschema:"Previous best value"`
}

type updateProfileInput struct {
	Name         string  `json:"name" jsonschema:"Display name"`
	Weight       float64 `json:"weight" jsonschema:"Current weight in pounds"`
	TargetWeight float64 `json:"target_weight" jsonschema:"Target weight in pounds"`
	WeeklyGoal   int     `json:"weekly_goal" jsonschema:"Workouts per week goal"`
}

type statsOutput struct {
	TotalWorkouts      int                     `json:"total_workouts"`
	TotalCalories      int                     `json:"total_calories"`
	TotalMinutes       int                     `json:"total_minutes"`
	CurrentStreak      int                     `json:"current_streak"`
	WeeklyGoalProgress int                     `json:"weekly_goal_progress"`
	PersonalRecords    []models.PersonalRecord `json:"personal_records"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	if !models.IsValidWorkoutType(input.WorkoutType) {
		return nil, workoutOutput{}, fmt.Errorf("unknown workout type: %s", input.WorkoutType)
	}

	w := models.NewWorkout(models.WorkoutType(input.WorkoutType), input.Name, input.Duration)
	if input.Calories > 0 {
		w.WithCalories(input.Calories)
	}
	if input.Date != "" {
		w.WithDate(input.Date)
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}
	for _, e := range input.Exercises {
		ex := models.NewExercise(e.Name)
		if e.Sets > 0 && e.Reps > 0 {
			ex.WithSetsReps(e.Sets, e.Reps)
		} else if e.Sets > 0 {
			ex.WithSets(e.Sets)
		}
		if e.Weight > 0 {
			ex.WithWeight(e.Weight)
		}
		if e.Duration > 0 {
			ex.WithDuration(e.Duration)
		}
		w.WithExercise(*ex)
	}

	stored, err := s.ctrl.AddWorkout(ctx, *w)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:       stored.ID.String()[:8],
		Name:     stored.Name,
		Calories: stored.Calories,
		Message:  fmt.Sprintf("Logged %s workout %q, %d min, %d cal (ID: %s)", stored.Type, stored.Name, stored.Duration, stored.Calories, stored.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if err := s.ctrl.Refresh(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	var out []models.Workout
	for _, w := range s.ctrl.Workouts() {
		if input.WorkoutType != "" && string(w.Type) != input.WorkoutType {
			continue
		}
		out = append(out, w)
		if len(out) >= input.Limit {
			break
		}
	}

	if len(out) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}
	return nil, out, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := s.resolveWorkoutID(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.ctrl.DeleteWorkout(ctx, id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", input.ID),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statsOutput, error) {
	if err := s.ctrl.Refresh(ctx); err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to load stats: %w", err)
	}

	st := s.ctrl.Stats()
	return nil, statsOutput{
		TotalWorkouts:      st.TotalWorkouts,
		TotalCalories:      st.TotalCalories,
		TotalMinutes:       st.TotalMinutes,
		CurrentStreak:      st.CurrentStreak,
		WeeklyGoalProgress: st.WeeklyGoalProgress,
		PersonalRecords:    st.PersonalRecords,
	}, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	m := models.Measurement{
		Date:    input.Date,
		Weight:  input.Weight,
		BodyFat: input.BodyFat,
		Chest:   input.Chest,
		Waist:   input.Waist,
		Hips:    input.Hips,
	}
	if err := s.ctrl.AddMeasurement(ctx, m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log measurement: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged measurement: %.1f lbs", input.Weight),
	}, nil
}

func (s *Server) handleLogRecord(ctx context.Context, req *mcp.CallToolRequest, input logRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	r := models.NewPersonalRecord(input.Name, input.Value, input.Unit, input.Date)
	if input.PreviousBest != nil {
		r.WithPreviousBest(*input.PreviousBest)
	}

	stored, err := s.ctrl.AddPersonalRecord(ctx, *r)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged record %s: %.1f %s (ID: %s)", stored.Name, stored.Value, stored.Unit, stored.ID.String()[:8]),
	}, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, req *mcp.CallToolRequest, input updateProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p := models.UserProfile{
		Name:         input.Name,
		Weight:       input.Weight,
		TargetWeight: input.TargetWeight,
		WeeklyGoal:   input.WeeklyGoal,
	}
	if err := s.ctrl.UpdateProfile(ctx, p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated profile for %s (weekly goal: %d)", input.Name, input.WeeklyGoal),
	}, nil
}

// resolveWorkoutID matches a full ID or prefix against the current
// snapshot, refreshing first so recent writes are visible.
func (s *Server) resolveWorkoutID(ctx context.Context, idOrPrefix string) (uuid.UUID, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, nil
	}

	if err := s.ctrl.Refresh(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	var match uuid.UUID
	for _, w := range s.ctrl.Workouts() {
		if len(idOrPrefix) > 0 && len(w.ID.String()) >= len(idOrPrefix) && w.ID.String()[:len(idOrPrefix)] == idOrPrefix {
			if match != uuid.Nil {
				return uuid.Nil, fmt.Errorf("ambiguous workout ID prefix: %s", idOrPrefix)
			}
			match = w.ID
		}
	}
	if match == uuid.Nil {
		return uuid.Nil, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	return match, nil
}
