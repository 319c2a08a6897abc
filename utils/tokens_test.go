package utils

import (
	"testing"
	"time"
)

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.NewJWT("user-1", "ana@example.com", "BROKER", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	userID, role, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}
	if role != "BROKER" {
		t.Errorf("role = %q, want BROKER", role)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	token, err := m.NewJWT("user-1", "ana@example.com", "USER", -time.Minute)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	if _, _, err := m.Parse(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuer, _ := NewManager("key-one")
	verifier, _ := NewManager("key-two")

	token, err := issuer.NewJWT("user-1", "ana@example.com", "USER", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	if _, _, err := verifier.Parse(token); err == nil {
		t.Error("expected error for token signed with another key")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	first, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(first))
	}

	second, _ := m.NewRefreshToken()
	if first == second {
		t.Error("two refresh tokens should not collide")
	}
}
