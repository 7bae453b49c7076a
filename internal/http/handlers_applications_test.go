package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
)

func TestApplicationSubmit(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(postJSON("/api/applications",
		`{"career_id":"c-1","applicant":"Ada","email":"Ada@Example.com"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)

	// Missing fields surface as a field-scoped validation error.
	rec = env.do(postJSON("/api/applications", `{"applicant":"Ada"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"career_id"`)
}

func TestApplicationUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.seedSession(t, domainauth.RoleHR)

	submit := env.do(postJSON("/api/applications",
		`{"career_id":"c-1","applicant":"Ada","email":"ada@example.com"}`))
	require.Equal(t, http.StatusCreated, submit.Code)

	t.Run("ReviewerComesFromSession", func(t *testing.T) {
		req := postJSON("/api/admin/applications/app-1/status", `{"status":"reviewed"}`)
		req.Method = http.MethodPatch
		req.AddCookie(cookie)

		rec := env.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "seeded@example.com", env.apps.lastReviewer)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		req := postJSON("/api/admin/applications/app-1/status", `{"status":"archived"}`)
		req.Method = http.MethodPatch
		req.AddCookie(cookie)

		assert.Equal(t, http.StatusBadRequest, env.do(req).Code)
	})

	t.Run("MissingApplicationIs404", func(t *testing.T) {
		req := postJSON("/api/admin/applications/nope/status", `{"status":"reviewed"}`)
		req.Method = http.MethodPatch
		req.AddCookie(cookie)

		assert.Equal(t, http.StatusNotFound, env.do(req).Code)
	})
}
