package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/civicgo/complaint-portal/models"
	"github.com/civicgo/complaint-portal/services"
)

// ComplaintController handles citizen-facing complaint requests
type ComplaintController struct {
	services *services.Services
}

// NewComplaintController creates a new complaint controller
func NewComplaintController(services *services.Services) *ComplaintController {
	return &ComplaintController{
		services: services,
	}
}

// Index handles GET /
func (c *ComplaintController) Index(w http.ResponseWriter, r *http.Request) {
	success := ""
	if r.URL.Query().Get("success") == "1" {
		success = "Your complaint has been submitted successfully."
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Form        *models.ComplaintForm
	}{
		Title:       "Submit a Complaint",
		CurrentPage: "home",
		Error:       r.URL.Query().Get("error"),
		Success:     success,
		Form:        &models.ComplaintForm{},
	}

	renderTemplate(w, "user", "templates/user.html", templateData)
}

// Submit handles POST /complain
func (c *ComplaintController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.ComplaintForm{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Complaint:       r.FormValue("complain"),
		Description:     r.FormValue("description"),
		CompleteAddress: r.FormValue("complete_address"),
	}

	_, err := c.services.Complaint.SubmitComplaint(r.Context(), form)
	if err != nil {
		// Reload the form with entered data and the error
		templateData := struct {
			Title       string
			CurrentPage string
			Error       string
			Success     string
			Form        *models.ComplaintForm
		}{
			Title:       "Submit a Complaint",
			CurrentPage: "home",
			Error:       err.Error(),
			Success:     "",
			Form:        form,
		}

		renderTemplateWithStatus(w, http.StatusBadRequest, "user_submit_error", "templates/user.html", templateData)
		return
	}

	// Redirect back to the form with a confirmation
	http.Redirect(w, r, "/?success=1", http.StatusSeeOther)
}

// MyComplaints handles GET /my_complaints
func (c *ComplaintController) MyComplaints(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		msg := url.QueryEscape("Please enter your email to check complaint status.")
		http.Redirect(w, r, "/?error="+msg, http.StatusSeeOther)
		return
	}

	complaints, err := c.services.Complaint.GetComplaintsByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, "Failed to load complaints: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Email       string
		Complaints  []models.Complaint
	}{
		Title:       "My Complaints",
		CurrentPage: "my_complaints",
		Error:       "",
		Success:     "",
		Email:       email,
		Complaints:  complaints,
	}

	renderTemplate(w, "my_complaints", "templates/my_complaints.html", templateData)
}
