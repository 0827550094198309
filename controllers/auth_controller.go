package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/civicgo/complaint-portal/authenticator"
	"github.com/civicgo/complaint-portal/middleware"
)

// AuthController handles administrator login and logout
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// loginPageData is the template data for the admin login form
type loginPageData struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	Username    string
}

// LoginForm handles GET /admin_login
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if loggedIn, ok := sess.Get(middleware.SessionAdminKey).(bool); ok && loggedIn {
		http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "admin_login", "templates/admin_login.html", loginPageData{
		Title:       "Admin Login",
		CurrentPage: "admin_login",
	})
}

// Login handles POST /admin_login
func (ac *AuthController) Login(verifier authenticator.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		if !verifier.Verify(username, password) {
			// Bad credentials are a user-visible warning, the session stays untouched
			renderTemplateWithStatus(w, http.StatusUnauthorized, "admin_login_error", "templates/admin_login.html", loginPageData{
				Title:       "Admin Login",
				CurrentPage: "admin_login",
				Error:       "Invalid credentials",
				Username:    username,
			})
			return
		}

		sess := session.GetSession(r)
		sess.Set(middleware.SessionAdminKey, true)
		sess.Set(middleware.SessionAdminUserKey, username)

		// Send the admin back to where they were headed before logging in
		target := "/admin_dashboard"
		if redirect, ok := sess.Get("redirect_after_login").(string); ok && redirect != "" {
			target = redirect
			sess.Delete("redirect_after_login")
		}

		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Logout handles GET /admin_logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionAdminKey)
	sess.Delete(middleware.SessionAdminUserKey)

	http.Redirect(w, r, "/admin_login", http.StatusSeeOther)
}
