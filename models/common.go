package models

import (
	"time"
)

// Common validation functions and utilities used across models

// DateTimeLayout is the display format for complaint timestamps (DD-MM-YYYY HH:MM:SS)
const DateTimeLayout = "02-01-2006 15:04:05"

// FormatDateTime formats a time as DD-MM-YYYY HH:MM:SS
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a DD-MM-YYYY HH:MM:SS string into a time.Time
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}
