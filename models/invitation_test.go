package models

import (
	"testing"
	"time"
)

func TestInvitationExpiry(t *testing.T) {
	expires := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	inv := Invitation{ExpiresAt: expires}

	if inv.IsExpired(expires.Add(-time.Minute)) {
		t.Fatalf("invitation must not be expired before expires_at")
	}
	if inv.IsExpired(expires) {
		t.Fatalf("invitation is still valid at the exact expiry instant")
	}
	if !inv.IsExpired(expires.Add(time.Minute)) {
		t.Fatalf("invitation must be expired after expires_at")
	}
}

func TestInvitationAccepted(t *testing.T) {
	inv := Invitation{}
	if inv.IsAccepted() {
		t.Fatalf("pending invitation must not be accepted")
	}

	now := time.Now()
	inv.AcceptedAt = &now
	if !inv.IsAccepted() {
		t.Fatalf("invitation with accepted_at must be accepted")
	}
}
