package models

import (
	"strings"
)

// Status is the administrator-controlled lifecycle stage of a complaint.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// AllStatuses lists the accepted status values in display order.
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusResolved}

// IsValid reports whether s is one of the accepted status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint represents a single citizen complaint record
type Complaint struct {
	ID              int    `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Email           string `json:"email" db:"email"`
	Complaint       string `json:"complaint" db:"complaint"`
	Description     string `json:"description" db:"description"`
	CompleteAddress string `json:"complete_address" db:"complete_address"`
	Status          Status `json:"status" db:"status"`
	Date            string `json:"date" db:"date"` // creation time, DD-MM-YYYY HH:MM:SS
}

// StatusCounts holds the aggregate counts shown on the admin dashboard.
type StatusCounts struct {
	Total      int `json:"total_complaints"`
	Pending    int `json:"pending_complaints"`
	InProgress int `json:"in_progress_complaints"`
	Resolved   int `json:"resolved_complaints"`
}

// ComplaintForm represents form data for submitting a complaint
type ComplaintForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Complaint       string `json:"complaint"`
	Description     string `json:"description"`
	CompleteAddress string `json:"complete_address"`
}

// Validate validates the complaint form data. Every field is required;
// email content beyond non-emptiness is not checked.
func (f *ComplaintForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "Name is required"})
	}

	if strings.TrimSpace(f.Email) == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	}

	if strings.TrimSpace(f.Complaint) == "" {
		errors = append(errors, ValidationError{Field: "complaint", Message: "Complaint is required"})
	}

	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "Description is required"})
	}

	if strings.TrimSpace(f.CompleteAddress) == "" {
		errors = append(errors, ValidationError{Field: "complete_address", Message: "Complete address is required"})
	}

	return errors
}
