package services

import (
	"github.com/civicgo/complaint-portal/repositories"
)

// Services holds all service instances
type Services struct {
	Complaint ComplaintService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Complaint: NewComplaintService(repos.Complaint),
	}
}
