package main

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgo/complaint-portal/authenticator"
	"github.com/civicgo/complaint-portal/config"
	"github.com/civicgo/complaint-portal/controllers"
	"github.com/civicgo/complaint-portal/database"
	"github.com/civicgo/complaint-portal/models"
	"github.com/civicgo/complaint-portal/repositories"
	"github.com/civicgo/complaint-portal/services"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "test-password"
)

// setupTestServer wires the full application against a temporary database
// and returns the HTTP test server plus the services for direct assertions.
func setupTestServer(t *testing.T) (*httptest.Server, *services.Services) {
	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	require.NoError(t, database.InitializeDatabase(dbPath))

	repos := repositories.NewRepositories(database.GetDB())
	srvs := services.NewServices(repos)
	ctrl := controllers.NewControllers(srvs)
	verifier := &authenticator.StaticVerifier{
		Username: testAdminUser,
		Password: testAdminPassword,
	}

	cfg := &config.Config{SessionLifetime: 3600}
	router, err := setupRouter(ctrl, verifier, cfg)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, srvs
}

// newSessionClient returns a client that keeps session cookies and follows redirects
func newSessionClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// newNoRedirectClient returns a client that reports redirects instead of following them
func newNoRedirectClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func login(t *testing.T, client *http.Client, baseURL string) {
	resp, err := client.PostForm(baseURL+"/admin_login", url.Values{
		"username": {testAdminUser},
		"password": {testAdminPassword},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func submitComplaint(t *testing.T, client *http.Client, baseURL string, form url.Values) {
	resp, err := client.PostForm(baseURL+"/complain", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "1", resp.Request.URL.Query().Get("success"))
}

func TestAdminRoutesRedirectWhenUnauthenticated(t *testing.T) {
	server, srvs := setupTestServer(t)
	client := newNoRedirectClient(t)

	// Seed one complaint so the mutating routes have a real target
	complaint, err := srvs.Complaint.SubmitComplaint(t.Context(), &models.ComplaintForm{
		Name:            "A",
		Email:           "a@x.com",
		Complaint:       "noise",
		Description:     "loud",
		CompleteAddress: "1 St",
	})
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin_dashboard"},
		{http.MethodGet, "/complaint_list"},
		{http.MethodGet, "/edit_complaint_list"},
		{http.MethodPost, "/update_status/" + strconv.Itoa(complaint.ID)},
		{http.MethodPost, "/delete_complaint/" + strconv.Itoa(complaint.ID)},
	}

	for _, route := range routes {
		var resp *http.Response
		if route.method == http.MethodPost {
			resp, err = client.PostForm(server.URL+route.path, url.Values{"status": {"Resolved"}})
		} else {
			resp, err = client.Get(server.URL + route.path)
		}
		require.NoError(t, err, route.path)
		resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, route.path)
		assert.Equal(t, "/admin_login", resp.Header.Get("Location"), route.path)
	}

	// The gated store operations never ran
	stored, err := srvs.Complaint.GetComplaintsByEmail(t.Context(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, models.StatusPending, stored[0].Status, "status update must not run unauthenticated")
}

func TestAdminLoginAndLogout(t *testing.T) {
	server, _ := setupTestServer(t)
	client := newSessionClient(t)

	// Wrong credentials are a user-visible warning, no session created
	resp, err := client.PostForm(server.URL+"/admin_login", url.Values{
		"username": {testAdminUser},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = client.Get(server.URL + "/admin_dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/admin_login", resp.Request.URL.Path, "failed login must not open the gate")

	// Correct credentials reach the dashboard
	login(t, client, server.URL)

	resp, err = client.Get(server.URL + "/admin_dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/admin_dashboard", resp.Request.URL.Path)

	// Logout closes the gate again, and is idempotent
	for i := 0; i < 2; i++ {
		resp, err = client.Get(server.URL + "/admin_logout")
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err = client.Get(server.URL + "/admin_dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/admin_login", resp.Request.URL.Path)
}

func TestComplaintLifecycleEndToEnd(t *testing.T) {
	server, srvs := setupTestServer(t)
	client := newSessionClient(t)

	before, err := srvs.Complaint.GetStatusCounts(t.Context())
	require.NoError(t, err)

	// Citizen submits a complaint
	submitComplaint(t, client, server.URL, url.Values{
		"name":             {"A"},
		"email":            {"a@x.com"},
		"complain":         {"noise"},
		"description":      {"loud"},
		"complete_address": {"1 St"},
	})

	afterSubmit, err := srvs.Complaint.GetStatusCounts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, afterSubmit.Total)
	assert.Equal(t, before.Pending+1, afterSubmit.Pending)

	// Lookup is case-insensitive on email
	resp, err := client.Get(server.URL + "/my_complaints?email=A%40X.COM")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "noise")
	assert.Contains(t, body, "Pending")

	stored, err := srvs.Complaint.GetComplaintsByEmail(t.Context(), "A@X.COM")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "A", stored[0].Name)
	assert.Equal(t, "loud", stored[0].Description)

	// Administrator resolves it
	login(t, client, server.URL)

	resp, err = client.PostForm(server.URL+"/update_status/"+strconv.Itoa(stored[0].ID), url.Values{
		"status": {string(models.StatusResolved)},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/edit_complaint_list", resp.Request.URL.Path)

	afterResolve, err := srvs.Complaint.GetStatusCounts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, afterSubmit.Total, afterResolve.Total)
	assert.Equal(t, afterSubmit.Pending-1, afterResolve.Pending)
	assert.Equal(t, afterSubmit.Resolved+1, afterResolve.Resolved)

	// And deletes it
	resp, err = client.PostForm(server.URL+"/delete_complaint/"+strconv.Itoa(stored[0].ID), nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	remaining, err := srvs.Complaint.GetComplaintsByEmail(t.Context(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSubmitComplaintValidation(t *testing.T) {
	server, srvs := setupTestServer(t)
	client := newSessionClient(t)

	// Missing fields re-render the form with an error and store nothing
	resp, err := client.PostForm(server.URL+"/complain", url.Values{
		"name":  {"A"},
		"email": {"a@x.com"},
	})
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "validation failed")

	counts, err := srvs.Complaint.GetStatusCounts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Total)

	// Any non-empty email is accepted, including host-only addresses
	submitComplaint(t, client, server.URL, url.Values{
		"name":             {"B"},
		"email":            {"user@localhost"},
		"complain":         {"noise"},
		"description":      {"loud"},
		"complete_address": {"2 St"},
	})

	stored, err := srvs.Complaint.GetComplaintsByEmail(t.Context(), "user@localhost")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, models.StatusPending, stored[0].Status)
}

func TestInvalidStatusRejected(t *testing.T) {
	server, srvs := setupTestServer(t)
	client := newSessionClient(t)

	complaint, err := srvs.Complaint.SubmitComplaint(t.Context(), &models.ComplaintForm{
		Name:            "A",
		Email:           "a@x.com",
		Complaint:       "noise",
		Description:     "loud",
		CompleteAddress: "1 St",
	})
	require.NoError(t, err)

	login(t, client, server.URL)

	resp, err := client.PostForm(server.URL+"/update_status/"+strconv.Itoa(complaint.ID), url.Values{
		"status": {"Closed"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "invalid status: \"Closed\"", resp.Request.URL.Query().Get("error"))

	stored, err := srvs.Complaint.GetComplaintByID(t.Context(), complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestMyComplaintsRequiresEmail(t *testing.T) {
	server, _ := setupTestServer(t)
	client := newNoRedirectClient(t)

	resp, err := client.Get(server.URL + "/my_complaints")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/?error="))
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status": "healthy"`)
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
