package domain

import "testing"

func TestPolicy_Allows(t *testing.T) {
	p := NewPolicy(RoleAdmin, RoleSuper)

	allRoles := []Role{RoleAdmin, RoleCommittee, RoleFinance, RoleSuper, RoleAllocator, "visitor"}
	for _, r := range allRoles {
		want := r == RoleAdmin || r == RoleSuper
		if got := p.Allows(r); got != want {
			t.Errorf("Allows(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestPolicy_EmptyRoleNeverAllowed(t *testing.T) {
	p := NewPolicy(RoleAdmin, "")

	if p.Allows("") {
		t.Fatalf("empty role must not be allowed")
	}
	if len(p.Roles()) != 1 {
		t.Fatalf("expected the empty role to be dropped, got %v", p.Roles())
	}
}

func TestPolicy_ZeroValueDeniesEverything(t *testing.T) {
	var p Policy
	if p.Allows(RoleAdmin) {
		t.Fatalf("zero Policy must deny all roles")
	}
}
