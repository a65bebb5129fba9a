package enums

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":   RoleAdmin,
		"GESTOR":  RoleGestor,
		" coder ": RoleCoder,
	}
	for input, want := range cases {
		got, err := ParseRole(input)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParseRole("owner"); err == nil {
		t.Fatal("expected unknown role to fail")
	}
	if Role("").IsValid() {
		t.Fatal("empty role must be invalid")
	}
}

func TestParseModality(t *testing.T) {
	if m, err := ParseModality("Hybrid"); err != nil || m != ModalityHybrid {
		t.Fatalf("expected hybrid, got %s (%v)", m, err)
	}
	if _, err := ParseModality("onsite"); err == nil {
		t.Fatal("expected onsite to be rejected")
	}
}

func TestApplicationStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		allowed  bool
	}{
		{ApplicationStatusPending, ApplicationStatusReviewing, true},
		{ApplicationStatusPending, ApplicationStatusAccepted, false},
		{ApplicationStatusPending, ApplicationStatusRejected, false},
		{ApplicationStatusReviewing, ApplicationStatusAccepted, true},
		{ApplicationStatusReviewing, ApplicationStatusRejected, true},
		{ApplicationStatusReviewing, ApplicationStatusPending, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusReviewing, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
	if !ApplicationStatusAccepted.IsTerminal() || !ApplicationStatusRejected.IsTerminal() {
		t.Fatal("accepted and rejected must be terminal")
	}
	if ApplicationStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
}
