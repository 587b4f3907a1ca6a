package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("chef@gestibud.fr") {
		t.Fatalf("expected a plain address to validate")
	}
	if ValidateEmail("pas-un-email") {
		t.Fatalf("expected an address without a domain to be rejected")
	}
}

func TestValidatePasswordLength(t *testing.T) {
	if ok, msg := ValidatePassword("court"); ok || msg == "" {
		t.Fatalf("expected a short password to be rejected with a message")
	}
	if ok, _ := ValidatePassword("longueur-huit"); !ok {
		t.Fatalf("expected an 8+ character password to pass")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  Dupont\x00  "); got != "Dupont" {
		t.Fatalf("expected trimmed, null-free input, got %q", got)
	}
}
