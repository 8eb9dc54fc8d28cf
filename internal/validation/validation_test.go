package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_FirstErrorPerFieldWins(t *testing.T) {
	rules := map[string][]Rule{
		"email": {Required("Email"), Email()},
	}

	result := Run(map[string]string{"email": ""}, rules)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Email is required", result.Errors["email"])

	result = Run(map[string]string{"email": "not-an-email"}, rules)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Please enter a valid email address", result.Errors["email"])

	result = Run(map[string]string{"email": "crew@wastewise.io"}, rules)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestID(t *testing.T) {
	tests := []struct {
		kind  string
		value string
		want  string
	}{
		{"WORKER", "W001", ""},
		{"WORKER", "W1", "ID must be in format W001"},
		{"WORKER", "X001", "ID must be in format W001"},
		{"ZONE", "Z123", ""},
		{"ROUTE", "R001", ""},
		{"VEHICLE_PICKUP", "PT010", ""},
		{"VEHICLE_ROUTE", "RT010", ""},
		{"VEHICLE_ROUTE", "PT010", "ID must be in format RT001"},
		{"PICKUP", "P900", ""},
		{"ASSIGNMENT", "AS042", ""},
		{"ASSIGNMENT", "AS0420", "ID must be in format AS001"},
	}
	for _, tt := range tests {
		got := ID(tt.kind, "ID")(tt.value)
		if got != tt.want {
			t.Errorf("ID(%s)(%q) = %q, want %q", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestID_EmptyValue(t *testing.T) {
	assert.Equal(t, "Zone ID is required", ID("ZONE", "Zone ID")(""))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"+254712345678", true},
		{"0712345678", false}, // leading zero
		{"+1 (555) 000-1234", true},
		{"555-0000", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		got := Phone()(tt.value)
		if (got == "") != tt.ok {
			t.Errorf("Phone()(%q) = %q, ok=%v", tt.value, got, tt.ok)
		}
	}
}

func TestEstimatedTime(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2 hours", true},
		{"1 hour", true},
		{"45 minutes", true},
		{"1 minute", true},
		{"2 Hours", true},
		{"90min", false},
		{"two hours", false},
		{"2 hours extra", false},
		{"", false},
	}
	for _, tt := range tests {
		got := EstimatedTime()(tt.value)
		if (got == "") != tt.ok {
			t.Errorf("EstimatedTime()(%q) = %q, ok=%v", tt.value, got, tt.ok)
		}
	}
}

func TestName(t *testing.T) {
	assert.Empty(t, Name("Worker name")("Mary-Anne O'Neil"))
	assert.Equal(t, "Worker name can only contain letters, spaces, hyphens, and apostrophes",
		Name("Worker name")("R2D2"))
	assert.Equal(t, "Worker name must be at least 2 characters long", Name("Worker name")("A"))
}

func TestRegistrationNumber(t *testing.T) {
	assert.Empty(t, RegistrationNumber()("KBX 123-A"))
	assert.NotEmpty(t, RegistrationNumber()("kbx123"))
	assert.NotEmpty(t, RegistrationNumber()("AB1"))
	assert.Equal(t, "Registration number is required", RegistrationNumber()(""))
}

func TestMinDuration(t *testing.T) {
	assert.Empty(t, MinDuration("09:00", "10:00", 60))
	assert.Empty(t, MinDuration("09:00", "11:30", 60))
	assert.Equal(t, "Time slot must be at least 60 minutes", MinDuration("09:00", "09:59", 60))
	assert.Equal(t, "Start time must be before end time", MinDuration("10:00", "09:00", 60))
	assert.Equal(t, "Start time is required", MinDuration("", "09:00", 60))
	assert.Equal(t, "End time is required", MinDuration("09:00", "", 60))
}

func TestDistinctFrom(t *testing.T) {
	first := "W001"
	rule := DistinctFrom(func() string { return first }, "Worker 2 must be different from Worker 1")

	assert.Equal(t, "Worker 2 must be different from Worker 1", rule("W001"))
	assert.Empty(t, rule("W002"))
	assert.Empty(t, rule("")) // empty second slot is Required's problem

	first = ""
	assert.Empty(t, rule("W001"))
}

func TestDateRange(t *testing.T) {
	assert.Empty(t, DateRange("2026-01-01", "2026-01-02"))
	assert.Equal(t, "Start date must be before end date", DateRange("2026-01-02", "2026-01-01"))
	assert.Equal(t, "Start date must be before end date", DateRange("2026-01-01", "2026-01-01"))
}
