// ABOUTME: Tests for profile, measurement, and personal record models.
// ABOUTME: Covers latest-measurement precedence and record improvement rules.
package models

import "testing"

func TestLatestMeasurement(t *testing.T) {
	p := &UserProfile{Measurements: []Measurement{
		{Date: "2025-12-01", Weight: 178},
		{Date: "2025-12-15", Weight: 175},
		{Date: "2025-12-08", Weight: 176},
	}}

	m := p.LatestMeasurement()
	if m == nil || m.Weight != 175 {
		t.Fatalf("expected latest weight 175, got %+v", m)
	}
}

func TestLatestMeasurementDuplicateDates(t *testing.T) {
	// Duplicate dates resolve to the later-inserted entry.
	p := &UserProfile{Measurements: []Measurement{
		{Date: "2025-12-15", Weight: 175},
		{Date: "2025-12-15", Weight: 174.5},
	}}

	m := p.LatestMeasurement()
	if m == nil || m.Weight != 174.5 {
		t.Fatalf("expected later entry to win, got %+v", m)
	}
}

func TestLatestMeasurementEmpty(t *testing.T) {
	p := &UserProfile{}
	if p.LatestMeasurement() != nil {
		t.Error("expected nil for empty timeline")
	}
}

func TestPersonalRecordImproved(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		previous float64
		want     bool
	}{
		{"heavier lift", 225, "lbs", 205, true},
		{"lighter lift", 195, "lbs", 205, false},
		{"faster run", 28, "min", 30, true},
		{"slower run", 32, "min", 30, false},
		{"longer plank", 180, "sec", 150, false}, // sec is lower-is-better
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewPersonalRecord(tt.name, tt.value, tt.unit, "2025-12-10").
				WithPreviousBest(tt.previous)
			if got := r.Improved(); got != tt.want {
				t.Errorf("Improved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPersonalRecordNoPreviousBest(t *testing.T) {
	r := NewPersonalRecord("Deadlift", 225, "lbs", "2025-12-10")
	if !r.Improved() {
		t.Error("first record should count as improvement")
	}
}
