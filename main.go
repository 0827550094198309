package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/civicgo/complaint-portal/authenticator"
	"github.com/civicgo/complaint-portal/config"
	"github.com/civicgo/complaint-portal/controllers"
	"github.com/civicgo/complaint-portal/database"
	authmiddleware "github.com/civicgo/complaint-portal/middleware"
	"github.com/civicgo/complaint-portal/repositories"
	"github.com/civicgo/complaint-portal/services"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Initialize admin credential verifier
	verifier := authenticator.NewVerifier(cfg)

	// Set up router
	r, err := setupRouter(ctrl, verifier, cfg)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("🚀 Complaint Portal starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DBPath)

	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, verifier authenticator.Verifier, cfg *config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "complaints_session",
		Secure:         cfg.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Static files (if we add any later)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Complaint.Index)
	r.Post("/complain", ctrl.Complaint.Submit)
	r.Get("/my_complaints", ctrl.Complaint.MyComplaints)
	r.Get("/admin_login", ctrl.Auth.LoginForm)
	r.Post("/admin_login", ctrl.Auth.Login(verifier))
	r.Get("/admin_logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "complaint-portal"}`)
	})

	// PROTECTED ROUTES (admin authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAdmin)

		r.Get("/admin_dashboard", ctrl.Admin.Dashboard)
		r.Get("/complaint_list", ctrl.Admin.ComplaintList)
		r.Get("/edit_complaint_list", ctrl.Admin.EditComplaintList)
		r.Post("/update_status/{id}", ctrl.Admin.UpdateStatus)
		r.Post("/delete_complaint/{id}", ctrl.Admin.Delete)
	})

	return r, nil
}
