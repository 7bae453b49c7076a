package auth

import (
	"encoding/json"
	"testing"
)

func TestRoleRef_UnmarshalBothShapes(t *testing.T) {
	var refs []RoleRef
	raw := `["HR", {"name":"MANAGER"}, {"name":"ADMIN","id":7}]`
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	names := RoleNames(refs)
	want := []Role{RoleHR, RoleManager, RoleAdmin}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i, n := range names {
		if n != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestRoleRef_MarshalCanonical(t *testing.T) {
	b, err := json.Marshal([]RoleRef{{Name: "HR"}, {Name: "ADMIN"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["HR","ADMIN"]` {
		t.Fatalf("expected bare-string form, got %s", b)
	}
}

func TestRoleNames_DropsEmptyAndDuplicates(t *testing.T) {
	refs := []RoleRef{{Name: "HR"}, {Name: ""}, {Name: "hr"}, {Name: "  "}}
	names := RoleNames(refs)
	if len(names) != 1 || names[0] != RoleHR {
		t.Fatalf("expected [HR], got %v", names)
	}
	if RoleNames(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}

func TestNormalizeRoleName_SpacedSpelling(t *testing.T) {
	if NormalizeRoleName("WEBSITE MANAGER") != RoleWebsiteManager {
		t.Fatalf("expected spaced spelling to normalize to WEBSITE_MANAGER")
	}
	if NormalizeRoleName("  admin ") != RoleAdmin {
		t.Fatalf("expected case/space tolerant normalization")
	}
}

func TestSession_HasRole(t *testing.T) {
	s := Session{Roles: []Role{RoleHR, RoleManager}}
	if !s.HasRole(RoleHR) || !s.HasRole(RoleManager) {
		t.Fatalf("expected both held roles to match")
	}
	if s.HasRole(RoleAdmin) {
		t.Fatalf("did not expect ADMIN")
	}
	// A session with no roles never matches and never panics.
	if (Session{}).HasRole(RoleAdmin) {
		t.Fatalf("did not expect match on empty role set")
	}
}

func TestSession_HasAnyRole_BothRepresentations(t *testing.T) {
	// Upstream may deliver roles as objects or plain strings; after
	// normalization through RoleNames both must behave identically.
	fromObjects := Session{Roles: RoleNames([]RoleRef{{Name: "HR"}})}
	fromStrings := Session{Roles: RoleNames([]RoleRef{{Name: "HR"}})}

	for _, s := range []Session{fromObjects, fromStrings} {
		if !s.HasAnyRole(RoleHR, RoleManager) {
			t.Fatalf("expected HR to satisfy {HR,MANAGER}")
		}
	}
}

func TestSession_HasAllRoles(t *testing.T) {
	s := Session{Roles: []Role{RoleHR, RoleManager}}
	if !s.HasAllRoles(RoleHR, RoleManager) {
		t.Fatalf("expected all held roles to satisfy")
	}
	if s.HasAllRoles(RoleHR, RoleAdmin) {
		t.Fatalf("missing role must fail HasAllRoles")
	}
}

func TestSession_User(t *testing.T) {
	s := Session{ID: "tok", UserID: "u1", Name: "Dana", Email: "d@example.com", Roles: []Role{RoleEmployee}}
	u := s.User()
	if u.ID != "u1" || u.Email != "d@example.com" || len(u.Roles) != 1 {
		t.Fatalf("unexpected user projection: %+v", u)
	}
}
