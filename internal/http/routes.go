package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
)

// Route policies. The admin shell admits anyone with a back-office role; the
// sections underneath narrow further, so a MANAGER can open /admin but never
// read contact messages.
var (
	policyAdminShell = domainauth.RequireAnyRole(
		domainauth.RoleAdmin,
		domainauth.RoleHR,
		domainauth.RoleManager,
		domainauth.RoleWebsiteManager,
	)
	policyEmployee = domainauth.RequireAnyRole(
		domainauth.RoleEmployee,
		domainauth.RoleAdmin,
	)
	policyPendingCounts = domainauth.RequireAnyRole(
		domainauth.RoleAdmin,
		domainauth.RoleHR,
		domainauth.RoleWebsiteManager,
	)
	policyApplications = domainauth.RequireAnyRole(
		domainauth.RoleAdmin,
		domainauth.RoleHR,
	)
	policyWebsiteInbox = domainauth.RequireAnyRole(
		domainauth.RoleAdmin,
		domainauth.RoleWebsiteManager,
	)
	policyUserAdmin = domainauth.RequireRole(domainauth.RoleAdmin)
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         AuthServiceInterface
	Counts       CountsService
	Applications ApplicationsRepo
	Contacts     ContactsRepo
	Callbacks    CallbacksRepo
	Users        UsersRepo

	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	if inv, ok := services.Counts.(CountInvalidator); ok {
		authHandlers.Counts = inv
	}
	countHandlers := &CountHandlers{Svc: services.Counts}
	applicationHandlers := &ApplicationHandlers{Repo: services.Applications}
	contactHandlers := &ContactHandlers{Repo: services.Contacts}
	callbackHandlers := &CallbackHandlers{Repo: services.Callbacks}
	userHandlers := &UserHandlers{Repo: services.Users}

	guard := func(policy domainauth.Policy, h http.HandlerFunc) http.Handler {
		return Guard(services.Auth, policy)(h)
	}

	// Session lifecycle. All public: Me and Logout do their own state
	// resolution and must never redirect.
	mux.Handle("POST /api/auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /api/auth/register", http.HandlerFunc(authHandlers.Register))
	mux.Handle("GET /api/auth/me", http.HandlerFunc(authHandlers.Me))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(authHandlers.Logout))

	// Public site submissions.
	mux.Handle("POST /api/applications", http.HandlerFunc(applicationHandlers.Submit))
	mux.Handle("POST /api/contact", http.HandlerFunc(contactHandlers.Submit))
	mux.Handle("POST /api/callback-requests", http.HandlerFunc(callbackHandlers.Submit))

	// Back-office API.
	mux.Handle("GET /api/admin/pending-counts", guard(policyPendingCounts, countHandlers.PendingCounts))
	mux.Handle("GET /api/admin/applications", guard(policyApplications, applicationHandlers.List))
	mux.Handle("PATCH /api/admin/applications/{id}/status", guard(policyApplications, applicationHandlers.UpdateStatus))
	mux.Handle("GET /api/admin/contact-messages", guard(policyWebsiteInbox, contactHandlers.List))
	mux.Handle("POST /api/admin/contact-messages/{id}/read", guard(policyWebsiteInbox, contactHandlers.MarkRead))
	mux.Handle("GET /api/admin/callback-requests", guard(policyWebsiteInbox, callbackHandlers.List))
	mux.Handle("POST /api/admin/callback-requests/{id}/handled", guard(policyWebsiteInbox, callbackHandlers.MarkHandled))
	mux.Handle("GET /api/admin/users", guard(policyUserAdmin, userHandlers.List))
	mux.Handle("PUT /api/admin/users/{id}/roles", guard(policyUserAdmin, userHandlers.UpdateRoles))
	mux.Handle("DELETE /api/admin/users/{id}", guard(policyUserAdmin, userHandlers.Delete))

	// Browser shells. The single-page frontend takes over after load; the
	// server's job is gating the navigation itself.
	mux.Handle("GET /admin", guard(policyAdminShell, serveShell("Back office")))
	mux.Handle("GET /admin/", guard(policyAdminShell, serveShell("Back office")))
	mux.Handle("GET /employee", guard(policyEmployee, serveShell("Employee portal")))
	mux.Handle("GET /employee/", guard(policyEmployee, serveShell("Employee portal")))
	mux.Handle("GET /login", http.HandlerFunc(serveShell("Sign in")))
	mux.Handle("GET /{$}", http.HandlerFunc(serveShell("Welcome")))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return BrowserDetection()(mux)
}

// serveShell renders the minimal HTML document that boots the frontend.
func serveShell(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><html><head><title>" + title +
			"</title></head><body><div id=\"app\"></div></body></html>"))
	}
}
