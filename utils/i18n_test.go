package utils

import "testing"

func TestTranslateResolvesLanguage(t *testing.T) {
	got := Translate("invitation.subject", "en", nil)
	if got != "Invitation to join Gestibud" {
		t.Fatalf("unexpected en translation %q", got)
	}
}

func TestTranslateFallsBackToFrench(t *testing.T) {
	got := Translate("invitation.subject", "de", nil)
	if got != "Invitation à rejoindre Gestibud" {
		t.Fatalf("unknown language must fall back to fr, got %q", got)
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	got := Translate("does.not.exist", "fr", nil)
	if got != "does.not.exist" {
		t.Fatalf("unknown key must fall back to itself, got %q", got)
	}
}

func TestTranslateSubstitutesParams(t *testing.T) {
	got := Translate("timeentry.stopped", "fr", map[string]string{"hours": "2,50"})
	if got != "Pointage arrêté (2,50 h)" {
		t.Fatalf("unexpected substituted text %q", got)
	}
}
