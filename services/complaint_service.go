package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/civicgo/complaint-portal/models"
	"github.com/civicgo/complaint-portal/repositories"
)

// ComplaintService interface defines complaint business logic
type ComplaintService interface {
	SubmitComplaint(ctx context.Context, form *models.ComplaintForm) (*models.Complaint, error)
	GetComplaintByID(ctx context.Context, id int) (*models.Complaint, error)
	GetComplaintsByEmail(ctx context.Context, email string) ([]models.Complaint, error)
	SearchComplaints(ctx context.Context, query string) ([]models.Complaint, error)
	GetAllComplaints(ctx context.Context) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	DeleteComplaint(ctx context.Context, id int) error
	GetStatusCounts(ctx context.Context) (*models.StatusCounts, error)
}

// complaintService implements ComplaintService interface
type complaintService struct {
	complaintRepo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
	}
}

// SubmitComplaint validates the form and creates a new complaint record
func (s *complaintService) SubmitComplaint(ctx context.Context, form *models.ComplaintForm) (*models.Complaint, error) {
	// Validate form
	if errors := form.Validate(); errors.HasErrors() {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errors.GetMessages(), ", "))
	}

	complaint := &models.Complaint{
		Name:            strings.TrimSpace(form.Name),
		Email:           strings.TrimSpace(form.Email),
		Complaint:       strings.TrimSpace(form.Complaint),
		Description:     strings.TrimSpace(form.Description),
		CompleteAddress: strings.TrimSpace(form.CompleteAddress),
		Status:          models.StatusPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to submit complaint: %w", err)
	}

	return complaint, nil
}

// GetComplaintByID retrieves a complaint by ID
func (s *complaintService) GetComplaintByID(ctx context.Context, id int) (*models.Complaint, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid complaint ID: %d", id)
	}
	return s.complaintRepo.GetByID(ctx, id)
}

// GetComplaintsByEmail retrieves all complaints for an email address
func (s *complaintService) GetComplaintsByEmail(ctx context.Context, email string) ([]models.Complaint, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.complaintRepo.GetByEmail(ctx, email)
}

// SearchComplaints retrieves complaints matching the query; an empty query
// returns all complaints
func (s *complaintService) SearchComplaints(ctx context.Context, query string) ([]models.Complaint, error) {
	return s.complaintRepo.Search(ctx, query)
}

// GetAllComplaints retrieves all complaints
func (s *complaintService) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.complaintRepo.GetAll(ctx)
}

// UpdateStatus validates the status value and updates the complaint.
// A missing ID is treated as a no-op, matching the delete behavior.
func (s *complaintService) UpdateStatus(ctx context.Context, id int, status string) error {
	if id <= 0 {
		return fmt.Errorf("invalid complaint ID: %d", id)
	}

	newStatus := models.Status(strings.TrimSpace(status))
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %q", status)
	}

	rowsAffected, err := s.complaintRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if rowsAffected == 0 {
		log.Printf("update status: no complaint with ID %d", id)
	}

	return nil
}

// DeleteComplaint permanently removes a complaint. A missing ID is a no-op.
func (s *complaintService) DeleteComplaint(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid complaint ID: %d", id)
	}

	rowsAffected, err := s.complaintRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}

	if rowsAffected == 0 {
		log.Printf("delete complaint: no complaint with ID %d", id)
	}

	return nil
}

// GetStatusCounts returns the dashboard aggregate counts
func (s *complaintService) GetStatusCounts(ctx context.Context) (*models.StatusCounts, error) {
	return s.complaintRepo.CountByStatus(ctx)
}
