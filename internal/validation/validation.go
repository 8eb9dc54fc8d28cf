package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Rule checks one field value and returns an error message, or "" when the
// value passes.
type Rule func(value string) string

// Result is what Run hands back to a form screen.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// Run applies each field's rules in order and records the first failure per
// field. Pure function of its inputs.
func Run(data map[string]string, rules map[string][]Rule) Result {
	errors := map[string]string{}
	for field, fieldRules := range rules {
		value := data[field]
		for _, rule := range fieldRules {
			if msg := rule(value); msg != "" {
				errors[field] = msg
				break // first error per field wins
			}
		}
	}
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// ID format patterns.
var idPatterns = map[string]*regexp.Regexp{
	"WORKER":         regexp.MustCompile(`^W\d{3}$`),
	"ZONE":           regexp.MustCompile(`^Z\d{3}$`),
	"VEHICLE_PICKUP": regexp.MustCompile(`^PT\d{3}$`),
	"VEHICLE_ROUTE":  regexp.MustCompile(`^RT\d{3}$`),
	"ROUTE":          regexp.MustCompile(`^R\d{3}$`),
	"PICKUP":         regexp.MustCompile(`^P\d{3}$`),
	"ASSIGNMENT":     regexp.MustCompile(`^AS\d{3}$`),
}

var idFormats = map[string]string{
	"WORKER":         "W001",
	"ZONE":           "Z001",
	"VEHICLE_PICKUP": "PT001",
	"VEHICLE_ROUTE":  "RT001",
	"ROUTE":          "R001",
	"PICKUP":         "P001",
	"ASSIGNMENT":     "AS001",
}

var (
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern        = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	namePattern         = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	registrationPattern = regexp.MustCompile(`^[A-Z0-9\s\-]+$`)
	estimatedTimeRe     = regexp.MustCompile(`(?i)^\d+\s*(hour|hours|minute|minutes)$`)
	phoneSeparators     = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Required rejects empty or whitespace-only values.
func Required(fieldName string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return fieldName + " is required"
		}
		return ""
	}
}

func Email() Rule {
	return func(value string) string {
		if value == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}
		return ""
	}
}

// Phone strips spaces, hyphens and parentheses before matching.
func Phone() Rule {
	return func(value string) string {
		if value == "" {
			return "Phone number is required"
		}
		if !phonePattern.MatchString(phoneSeparators.Replace(value)) {
			return "Please enter a valid phone number"
		}
		return ""
	}
}

func Name(fieldName string) Rule {
	return func(value string) string {
		if value == "" {
			return fieldName + " is required"
		}
		if !namePattern.MatchString(value) {
			return fieldName + " can only contain letters, spaces, hyphens, and apostrophes"
		}
		if len(value) < 2 {
			return fieldName + " must be at least 2 characters long"
		}
		return ""
	}
}

// ID validates a fixed-format id such as W001 or AS001. kind must be one of
// WORKER, ZONE, VEHICLE_PICKUP, VEHICLE_ROUTE, ROUTE, PICKUP, ASSIGNMENT.
func ID(kind, fieldName string) Rule {
	pattern, ok := idPatterns[kind]
	format := idFormats[kind]
	return func(value string) string {
		if value == "" {
			return fieldName + " is required"
		}
		if !ok || !pattern.MatchString(value) {
			return fieldName + " must be in format " + format
		}
		return ""
	}
}

func RegistrationNumber() Rule {
	return func(value string) string {
		if value == "" {
			return "Registration number is required"
		}
		if !registrationPattern.MatchString(value) {
			return "Registration number can only contain letters, numbers, spaces, and hyphens"
		}
		if len(value) < 4 {
			return "Registration number must be at least 4 characters long"
		}
		return ""
	}
}

func PositiveNumber(fieldName string) Rule {
	return func(value string) string {
		if value == "" {
			return fieldName + " is required"
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return fieldName + " must be a positive number"
		}
		return ""
	}
}

// Select rejects an empty choice.
func Select(fieldName string) Rule {
	return func(value string) string {
		if value == "" {
			return "Please select a " + fieldName
		}
		return ""
	}
}

func MinLen(min int, fieldName string) Rule {
	return func(value string) string {
		if value == "" {
			return fieldName + " is required"
		}
		if len(value) < min {
			return fmt.Sprintf("%s must be at least %d characters long", fieldName, min)
		}
		return ""
	}
}

func MaxLen(max int, fieldName string) Rule {
	return func(value string) string {
		if value != "" && len(value) > max {
			return fmt.Sprintf("%s must not exceed %d characters", fieldName, max)
		}
		return ""
	}
}

// EstimatedTime accepts "2 hours", "45 minutes" and the singular forms.
func EstimatedTime() Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "Estimated time is required"
		}
		if !estimatedTimeRe.MatchString(strings.TrimSpace(value)) {
			return `Estimated time must be in format "X hours" or "X minutes"`
		}
		return ""
	}
}

// DistinctFrom attaches to the SECOND of two fields and fails when both are
// set and equal. other supplies the first field's current value.
func DistinctFrom(other func() string, message string) Rule {
	return func(value string) string {
		if value != "" && other() != "" && value == other() {
			return message
		}
		return ""
	}
}

// DateRange checks start < end over ISO-formatted dates; lexical comparison
// is ordering-correct for that layout.
func DateRange(start, end string) string {
	if start == "" {
		return "Start date is required"
	}
	if end == "" {
		return "End date is required"
	}
	if start >= end {
		return "Start date must be before end date"
	}
	return ""
}

// TimeRange checks start < end over HH:MM values.
func TimeRange(start, end string) string {
	if start == "" {
		return "Start time is required"
	}
	if end == "" {
		return "End time is required"
	}
	if start >= end {
		return "Start time must be before end time"
	}
	return ""
}

// MinDuration checks that an HH:MM slot spans at least min minutes.
func MinDuration(start, end string, min int) string {
	if msg := TimeRange(start, end); msg != "" {
		return msg
	}
	if minutes(end)-minutes(start) < min {
		return fmt.Sprintf("Time slot must be at least %d minutes", min)
	}
	return ""
}

func minutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
