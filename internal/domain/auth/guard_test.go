package auth

import "testing"

func adminPolicy() Policy { return RequireRole(RoleAdmin) }

func TestDecide_PublicAlwaysAllows(t *testing.T) {
	for _, status := range []Status{StatusInitializing, StatusAuthenticated, StatusUnauthenticated} {
		if got := Decide(State{Status: status}, Public()); got != DecisionAllow {
			t.Fatalf("public policy with status %v: expected allow, got %v", status, got)
		}
	}
}

func TestDecide_AdminRouteOrdering(t *testing.T) {
	// The three literal fixtures from the guard contract: anonymous visitor,
	// authenticated non-admin, authenticated admin.
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{
			name:  "anonymous visitor redirects to login",
			state: State{Status: StatusUnauthenticated},
			want:  DecisionRedirectLogin,
		},
		{
			name: "authenticated employee redirects home",
			state: State{
				Status:  StatusAuthenticated,
				Session: &Session{Roles: []Role{RoleEmployee}},
			},
			want: DecisionRedirectHome,
		},
		{
			name: "authenticated admin renders",
			state: State{
				Status:  StatusAuthenticated,
				Session: &Session{Roles: []Role{RoleAdmin}},
			},
			want: DecisionAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.state, adminPolicy()); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecide_InitializingDefersBeforeEverything(t *testing.T) {
	// Deferral outranks presence: a store outage must never look like
	// "not logged in", even on a role-restricted route.
	state := State{Status: StatusInitializing}
	for _, policy := range []Policy{RequireAuth(), adminPolicy(), RequireAnyRole(RoleHR, RoleManager)} {
		if got := Decide(state, policy); got != DecisionDefer {
			t.Fatalf("policy %+v: expected defer, got %v", policy, got)
		}
	}
}

func TestDecide_AnonymousNeverSeesHomeRedirect(t *testing.T) {
	// The login-vs-home distinction leaks which roles a route requires, so
	// anonymous visitors get the login redirect on every protected route.
	state := State{Status: StatusUnauthenticated}
	for _, policy := range []Policy{RequireAuth(), adminPolicy(), RequireAllRoles(RoleAdmin, RoleHR)} {
		if got := Decide(state, policy); got != DecisionRedirectLogin {
			t.Fatalf("policy %+v: expected login redirect, got %v", policy, got)
		}
	}
}

func TestDecide_AnyAuthAdmitsAnyRole(t *testing.T) {
	state := State{
		Status:  StatusAuthenticated,
		Session: &Session{Roles: []Role{RoleEmployee}},
	}
	if got := Decide(state, RequireAuth()); got != DecisionAllow {
		t.Fatalf("expected allow, got %v", got)
	}
}

func TestDecide_AnyOfHonorsEveryHeldRole(t *testing.T) {
	// Multi-role users are admitted when any held role matches.
	state := State{
		Status:  StatusAuthenticated,
		Session: &Session{Roles: []Role{RoleHR, RoleManager}},
	}
	if got := Decide(state, RequireAnyRole(RoleAdmin, RoleHR)); got != DecisionAllow {
		t.Fatalf("expected allow for HR holder, got %v", got)
	}
	if got := Decide(state, RequireAnyRole(RoleAdmin, RoleWebsiteManager)); got != DecisionRedirectHome {
		t.Fatalf("expected home redirect for non-member, got %v", got)
	}
}

func TestDecide_AllOf(t *testing.T) {
	state := State{
		Status:  StatusAuthenticated,
		Session: &Session{Roles: []Role{RoleHR, RoleManager}},
	}
	if got := Decide(state, RequireAllRoles(RoleHR, RoleManager)); got != DecisionAllow {
		t.Fatalf("expected allow, got %v", got)
	}
	if got := Decide(state, RequireAllRoles(RoleHR, RoleAdmin)); got != DecisionRedirectHome {
		t.Fatalf("expected home redirect, got %v", got)
	}
}

func TestDecide_AuthenticatedWithNilSessionRedirectsLogin(t *testing.T) {
	// Defensive: an inconsistent state (authenticated, no session) must fail
	// closed toward login, not render.
	state := State{Status: StatusAuthenticated, Session: nil}
	if got := Decide(state, RequireAuth()); got != DecisionRedirectLogin {
		t.Fatalf("expected login redirect, got %v", got)
	}
}
