package auth

import "testing"

func TestLandingRoute(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		want  string
	}{
		{"admin", []Role{RoleAdmin}, LandingAdmin},
		{"hr", []Role{RoleHR}, LandingAdmin},
		{"website manager", []Role{RoleWebsiteManager}, LandingAdmin},
		{"manager", []Role{RoleManager}, LandingAdmin},
		{"employee", []Role{RoleEmployee}, LandingEmployee},
		{"no recognized roles", []Role{"CONTRACTOR"}, LandingHome},
		{"empty role set", nil, LandingHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandingRoute(tt.roles); got != tt.want {
				t.Fatalf("roles %v: expected %q, got %q", tt.roles, tt.want, got)
			}
		})
	}
}

func TestLandingRoute_PriorityNotInsertionOrder(t *testing.T) {
	// ADMIN outranks EMPLOYEE regardless of assignment order.
	if got := LandingRoute([]Role{RoleEmployee, RoleAdmin}); got != LandingAdmin {
		t.Fatalf("expected admin landing, got %q", got)
	}
	if got := LandingRoute([]Role{RoleAdmin, RoleEmployee}); got != LandingAdmin {
		t.Fatalf("expected admin landing, got %q", got)
	}
	// HR+EMPLOYEE also resolves to the admin shell.
	if got := LandingRoute([]Role{RoleEmployee, RoleHR}); got != LandingAdmin {
		t.Fatalf("expected admin landing for HR, got %q", got)
	}
}
