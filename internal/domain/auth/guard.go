package auth

// Status describes the session lifecycle state a request is resolved against.
type Status int

const (
	// StatusInitializing means the session store could not be consulted;
	// the access decision is deferred, not denied.
	StatusInitializing Status = iota
	// StatusAuthenticated means a live session was resolved.
	StatusAuthenticated
	// StatusUnauthenticated means no token, an unknown token, or an
	// expired session.
	StatusUnauthenticated
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is the session view the guard decides against.
// Session is non-nil only when Status is StatusAuthenticated.
type State struct {
	Status  Status
	Session *Session
}

// Policy declares what a route requires. The zero value admits everyone.
type Policy struct {
	// AnyAuth requires an authenticated session with no role constraint.
	AnyAuth bool
	// AnyOf requires membership in at least one of the listed roles.
	AnyOf []Role
	// AllOf requires membership in every listed role.
	AllOf []Role
}

// Public is the open policy.
func Public() Policy { return Policy{} }

// RequireAuth admits any authenticated session.
func RequireAuth() Policy { return Policy{AnyAuth: true} }

// RequireRole admits sessions holding the single named role.
func RequireRole(role Role) Policy { return Policy{AnyOf: []Role{role}} }

// RequireAnyRole admits sessions holding at least one of the named roles.
func RequireAnyRole(roles ...Role) Policy { return Policy{AnyOf: roles} }

// RequireAllRoles admits sessions holding every named role.
func RequireAllRoles(roles ...Role) Policy { return Policy{AllOf: roles} }

// Protected reports whether the policy restricts access at all.
func (p Policy) Protected() bool {
	return p.AnyAuth || len(p.AnyOf) > 0 || len(p.AllOf) > 0
}

// Decision is the guard's terminal verdict for a navigation attempt.
type Decision int

const (
	// DecisionAllow renders the protected subtree.
	DecisionAllow Decision = iota
	// DecisionDefer renders a neutral waiting response; never a redirect.
	DecisionDefer
	// DecisionRedirectLogin sends the visitor to login, capturing the
	// originally requested location.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated-but-unauthorized user to
	// the home route.
	DecisionRedirectHome
)

// String returns the decision name for logging.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDefer:
		return "defer"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

// Decide gates a navigation attempt. It is a pure function of
// (status, roles, policy) so it can be tested without mounting any HTTP
// machinery.
//
// The check order is load-bearing: deferral is checked before presence so a
// transient store outage never produces a false "not logged in" redirect, and
// presence is checked before role so anonymous visitors always receive the
// login redirect and never learn which roles a route requires.
func Decide(state State, policy Policy) Decision {
	if !policy.Protected() {
		return DecisionAllow
	}

	if state.Status == StatusInitializing {
		return DecisionDefer
	}

	if state.Status != StatusAuthenticated || state.Session == nil {
		return DecisionRedirectLogin
	}

	sess := state.Session
	if len(policy.AllOf) > 0 && !sess.HasAllRoles(policy.AllOf...) {
		return DecisionRedirectHome
	}
	if len(policy.AnyOf) > 0 && !sess.HasAnyRole(policy.AnyOf...) {
		return DecisionRedirectHome
	}

	return DecisionAllow
}
