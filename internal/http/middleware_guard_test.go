package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
)

func TestGuardDefersWhileSessionStateUnknown(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleAdmin)

	// The store goes dark: the session may well still be valid, so the
	// guard must stall, not bounce to login.
	env.store.Err = errors.New("dial tcp: connection refused")

	t.Run("BrowserNavigation", func(t *testing.T) {
		req := browserGet("/admin")
		req.AddCookie(cookie)
		rec := env.do(req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Empty(t, rec.Header().Get("Location"), "deferral must never redirect")
	})

	t.Run("APIRequest", func(t *testing.T) {
		req := browserGet("/api/admin/users")
		req.AddCookie(cookie)
		rec := env.do(req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "session_unavailable")
	})

	// Once the store recovers the same cookie works again; nobody was
	// logged out by the outage.
	env.store.Err = nil
	req := browserGet("/admin")
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, env.do(req).Code)
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("BrowserNavigation", func(t *testing.T) {
		rec := env.do(browserGet("/admin"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/login", loc.Path)
		assert.Equal(t, "/admin", loc.Query().Get("redirect_uri"))
	})

	t.Run("APIRequest", func(t *testing.T) {
		rec := env.do(browserGet("/api/admin/users"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication_required")
	})
}

func TestGuardBouncesWrongRoleToOwnLanding(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleEmployee)

	t.Run("BrowserNavigation", func(t *testing.T) {
		req := browserGet("/admin")
		req.AddCookie(cookie)
		rec := env.do(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, domainauth.LandingEmployee, rec.Header().Get("Location"))
	})

	t.Run("APIRequest", func(t *testing.T) {
		req := browserGet("/api/admin/users")
		req.AddCookie(cookie)
		rec := env.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "insufficient_permissions")
	})
}

func TestGuardSectionPoliciesNarrowBeyondShell(t *testing.T) {
	env := newTestEnv(t)

	// A MANAGER can open the admin shell but none of the inbox sections.
	manager := env.seedSession(t, domainauth.RoleManager)

	req := browserGet("/admin")
	req.AddCookie(manager)
	assert.Equal(t, http.StatusOK, env.do(req).Code)

	for _, path := range []string{
		"/api/admin/pending-counts",
		"/api/admin/applications",
		"/api/admin/contact-messages",
		"/api/admin/users",
	} {
		req := browserGet(path)
		req.AddCookie(manager)
		assert.Equalf(t, http.StatusForbidden, env.do(req).Code, "path %s", path)
	}

	// HR reaches applications and counts but not the website inbox or
	// user administration.
	hr := env.seedSession(t, domainauth.RoleHR)
	for path, want := range map[string]int{
		"/api/admin/pending-counts":    http.StatusOK,
		"/api/admin/applications":      http.StatusOK,
		"/api/admin/contact-messages":  http.StatusForbidden,
		"/api/admin/callback-requests": http.StatusForbidden,
		"/api/admin/users":             http.StatusForbidden,
	} {
		req := browserGet(path)
		req.AddCookie(hr)
		assert.Equalf(t, want, env.do(req).Code, "path %s", path)
	}

	// ADMIN reaches everything, including the employee portal.
	admin := env.seedSession(t, domainauth.RoleAdmin)
	for _, path := range []string{
		"/api/admin/pending-counts",
		"/api/admin/applications",
		"/api/admin/contact-messages",
		"/api/admin/callback-requests",
		"/api/admin/users",
		"/employee",
	} {
		req := browserGet(path)
		req.AddCookie(admin)
		assert.Equalf(t, http.StatusOK, env.do(req).Code, "path %s", path)
	}
}

func TestGuardAcceptsLegacySpacedRoleNames(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.Role("WEBSITE MANAGER"))

	req := browserGet("/api/admin/contact-messages")
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, env.do(req).Code)
}

func TestGuardLeavesPublicRoutesAlone(t *testing.T) {
	env := newTestEnv(t)
	env.store.Err = errors.New("store down")

	// Public routes never consult the guard, so a store outage cannot
	// break the landing or login pages.
	assert.Equal(t, http.StatusOK, env.do(browserGet("/")).Code)
	assert.Equal(t, http.StatusOK, env.do(browserGet("/login")).Code)
	assert.Equal(t, http.StatusOK, env.do(browserGet("/healthz")).Code)
}
