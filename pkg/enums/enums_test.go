package enums

import "testing"

func TestParseRole(t *testing.T) {
	for _, value := range []string{"INVESTOR", "STARTUP", "MANUFACTURER", "ADMIN"} {
		role, err := ParseRole(value)
		if err != nil {
			t.Fatalf("parse role %q: %v", value, err)
		}
		if !role.IsValid() {
			t.Fatalf("expected %q to be valid", value)
		}
	}

	if _, err := ParseRole("investor"); err == nil {
		t.Fatal("expected lowercase role to be rejected")
	}
	if Role("FOUNDER").IsValid() {
		t.Fatal("unknown role reported valid")
	}
}

func TestApplicationStatusDecisions(t *testing.T) {
	cases := map[ApplicationStatus]bool{
		ApplicationStatusPending:  false,
		ApplicationStatusAccepted: true,
		ApplicationStatusRejected: true,
		ApplicationStatusMoreInfo: true,
	}
	for status, want := range cases {
		if got := status.IsDecision(); got != want {
			t.Fatalf("%s: IsDecision = %v, want %v", status, got, want)
		}
	}

	if _, err := ParseApplicationStatus("WITHDRAWN"); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestParseConnectionStatus(t *testing.T) {
	status, err := ParseConnectionStatus("ACCEPTED")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if status != ConnectionStatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", status)
	}
	if _, err := ParseConnectionStatus("MORE_INFO"); err == nil {
		t.Fatal("MORE_INFO is not a connection status")
	}
}
