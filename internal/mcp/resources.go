// ABOUTME: MCP resource implementations for fitness data.
// ABOUTME: Provides fitness://stats, fitness://recent, and fitness://profile resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitness://stats - derived statistics dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://stats",
		Name:        "Fitness Statistics",
		Description: "Totals, current streak, and weekly goal progress",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// fitness://recent - last 10 workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://recent",
		Name:        "Recent Workouts",
		Description: "Last 10 workouts with their exercises",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fitness://profile - profile with measurement timeline
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://profile",
		Name:        "User Profile",
		Description: "Profile, weekly goal, and body measurement history",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if err := s.ctrl.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	st := s.ctrl.Stats()
	result := map[string]interface{}{
		"generated_at":         time.Now().Format(time.RFC3339),
		"total_workouts":       st.TotalWorkouts,
		"total_calories":       st.TotalCalories,
		"total_minutes":        st.TotalMinutes,
		"current_streak":       st.CurrentStreak,
		"weekly_goal_progress": st.WeeklyGoalProgress,
		"personal_records":     st.PersonalRecords,
	}

	return resourceJSON("fitness://stats", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if err := s.ctrl.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	workouts := s.ctrl.Workouts()
	if len(workouts) > 10 {
		workouts = workouts[:10]
	}

	return resourceJSON("fitness://recent", map[string]interface{}{
		"workouts": workouts,
	})
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if err := s.ctrl.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	result := map[string]interface{}{
		"profile":      s.ctrl.Profile(),
		"measurements": s.ctrl.Measurements(),
	}

	return resourceJSON("fitness://profile", result)
}

func resourceJSON(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
