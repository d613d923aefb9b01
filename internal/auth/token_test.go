package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")
	tok, err := MintToken(secret, "user-1", "a@b.c", time.Now())
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	userID, err := ParseToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want user-1", userID)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tok, err := MintToken([]byte("secret-a"), "user-1", "a@b.c", time.Now())
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if _, err := ParseToken([]byte("secret-b"), tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	issued := time.Now().Add(-sessionTTL - time.Hour)
	tok, err := MintToken([]byte("secret"), "user-1", "a@b.c", issued)
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if _, err := ParseToken([]byte("secret"), tok); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestMintTokenRejectsEmptyUser(t *testing.T) {
	if _, err := MintToken([]byte("secret"), "", "a@b.c", time.Now()); err == nil {
		t.Fatal("expected error for empty user")
	}
}
