package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/ports"
	"github.com/nexora/corpsite-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds ports.Credentials) (*service.LoginResult, error)
	Register(ctx context.Context, account ports.NewAccount) (*service.LoginResult, error)
	Resolve(ctx context.Context, sessionID string) domainauth.State
	Logout(ctx context.Context, sessionID string) error
}

// CountInvalidator discards cached pending counts. Wired to logout so badge
// values from the ended session cannot leak into the next one.
type CountInvalidator interface {
	Invalidate(ctx context.Context)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Counts       CountInvalidator
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential sign-in.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), ports.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		// The caller's previous state is untouched; nothing to clean up.
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)
	WriteJSON(w, http.StatusOK, sessionResponse(result))
}

// Register handles account creation with immediate sign-in.
// POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Register(r.Context(), ports.NewAccount{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)
	WriteJSON(w, http.StatusCreated, sessionResponse(result))
}

// Me resolves the caller's session token into the current auth snapshot.
// GET /api/auth/me.
//
// This is the rehydration endpoint: a page load with a stale or garbage token
// gets a definitive "not authenticated", while a backing-store outage gets
// 503 so the client keeps its token and retries instead of logging out.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	state := h.Svc.Resolve(r.Context(), token)

	switch state.Status {
	case domainauth.StatusInitializing:
		w.Header().Set("Retry-After", "1")
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "session_unavailable",
			Err:     messageError("Session state is not available yet; retry."),
		})

	case domainauth.StatusAuthenticated:
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"user":          state.Session.User(),
			"expires_at":    state.Session.ExpiresAt,
		})

	default:
		if token != "" {
			h.clearCookie(w, r, SessionCookieName)
		}
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
	}
}

// Logout tears down the caller's session.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionTokenFromRequest(r); token != "" {
		if err := h.Svc.Logout(r.Context(), token); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}

	// Discard badge counts before answering so a racing refresh cannot
	// surface the old session's numbers.
	if h.Counts != nil {
		h.Counts.Invalidate(r.Context())
	}

	h.clearCookie(w, r, SessionCookieName)

	if IsBrowserRequest(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"redirect_to": "/login",
	})
}

func sessionResponse(result *service.LoginResult) map[string]any {
	return map[string]any{
		"user":        result.Session.User(),
		"token":       result.Session.ID,
		"redirect_to": result.RedirectTo,
		"expires_at":  result.Session.ExpiresAt,
	}
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
