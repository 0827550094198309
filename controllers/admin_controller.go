package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/civicgo/complaint-portal/models"
	"github.com/civicgo/complaint-portal/services"
	"github.com/civicgo/complaint-portal/userctx"
)

// AdminController handles administrative complaint management requests
type AdminController struct {
	services *services.Services
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services) *AdminController {
	return &AdminController{
		services: services,
	}
}

// Dashboard handles GET /admin_dashboard
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := c.services.Complaint.GetStatusCounts(r.Context())
	if err != nil {
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Counts      *models.StatusCounts
		CurrentTime string
	}{
		Title:       "Admin Dashboard",
		CurrentPage: "dashboard",
		Error:       "",
		Success:     "",
		Counts:      counts,
		CurrentTime: models.FormatDateTime(time.Now()),
	}

	renderTemplate(w, "admin_dashboard", "templates/admin_dashboard.html", templateData)
}

// ComplaintList handles GET /complaint_list
func (c *AdminController) ComplaintList(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("search")

	complaints, err := c.services.Complaint.SearchComplaints(r.Context(), searchQuery)
	if err != nil {
		http.Error(w, "Failed to load complaints: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Complaints  []models.Complaint
		SearchQuery string
	}{
		Title:       "Complaint List",
		CurrentPage: "complaint_list",
		Error:       "",
		Success:     "",
		Complaints:  complaints,
		SearchQuery: searchQuery,
	}

	renderTemplate(w, "complaint_list", "templates/complaint_list.html", templateData)
}

// EditComplaintList handles GET /edit_complaint_list
func (c *AdminController) EditComplaintList(w http.ResponseWriter, r *http.Request) {
	complaints, err := c.services.Complaint.GetAllComplaints(r.Context())
	if err != nil {
		http.Error(w, "Failed to load complaints: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Complaints  []models.Complaint
		Statuses    []models.Status
	}{
		Title:       "Edit Complaints",
		CurrentPage: "edit_complaint_list",
		Error:       r.URL.Query().Get("error"),
		Success:     "",
		Complaints:  complaints,
		Statuses:    models.AllStatuses,
	}

	renderTemplate(w, "edit_complaint_list", "templates/edit_complaint_list.html", templateData)
}

// UpdateStatus handles POST /update_status/{id}
func (c *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	status := r.FormValue("status")
	if err := c.services.Complaint.UpdateStatus(r.Context(), id, status); err != nil {
		http.Redirect(w, r, "/edit_complaint_list?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	log.Printf("admin %s set complaint %d to %q", userctx.GetAdminUsername(r.Context()), id, status)
	http.Redirect(w, r, "/edit_complaint_list", http.StatusSeeOther)
}

// Delete handles POST /delete_complaint/{id}
func (c *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid complaint ID", http.StatusBadRequest)
		return
	}

	if err := c.services.Complaint.DeleteComplaint(r.Context(), id); err != nil {
		http.Redirect(w, r, "/edit_complaint_list?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	log.Printf("admin %s deleted complaint %d", userctx.GetAdminUsername(r.Context()), id)
	http.Redirect(w, r, "/edit_complaint_list", http.StatusSeeOther)
}
