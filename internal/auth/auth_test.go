package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := IssueToken(secret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	email, ok := VerifyToken(secret, token)
	if !ok {
		t.Fatal("VerifyToken rejected a fresh token")
	}
	if email != "admin@example.com" {
		t.Fatalf("email = %q, want admin@example.com", email)
	}
}

func TestTokensForSameIdentityDiffer(t *testing.T) {
	a, err := IssueToken(secret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	b, err := IssueToken(secret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if a == b {
		t.Fatal("two tokens for the same identity are identical")
	}
	if _, ok := VerifyToken(secret, a); !ok {
		t.Fatal("first token invalid")
	}
	if _, ok := VerifyToken(secret, b); !ok {
		t.Fatal("second token invalid")
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	token, err := IssueToken(secret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Flip the last signature character.
	last := token[len(token)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	if _, ok := VerifyToken(secret, tampered); ok {
		t.Fatal("VerifyToken accepted a tampered token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := IssueToken(secret, "admin@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, ok := VerifyToken("other-secret", token); ok {
		t.Fatal("VerifyToken accepted a token signed with a different secret")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	token, err := IssueToken(secret, "admin@example.com", -time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, ok := VerifyToken(secret, token); ok {
		t.Fatal("VerifyToken accepted an expired token")
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := VerifyToken(secret, tok); ok {
			t.Fatalf("VerifyToken accepted %q", tok)
		}
	}
}

func TestCheckCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	if !CheckCredentials("admin@example.com", string(hash), "admin@example.com", "hunter2") {
		t.Fatal("valid credentials rejected")
	}
	if !CheckCredentials("admin@example.com", string(hash), "  ADMIN@example.com ", "hunter2") {
		t.Fatal("email comparison should trim and ignore case")
	}
	if CheckCredentials("admin@example.com", string(hash), "admin@example.com", "wrong") {
		t.Fatal("wrong password accepted")
	}
	if CheckCredentials("admin@example.com", string(hash), "other@example.com", "hunter2") {
		t.Fatal("unknown email accepted")
	}
}

func TestEmailContext(t *testing.T) {
	if _, ok := EmailFrom(context.Background()); ok {
		t.Fatal("EmailFrom found an identity in an empty context")
	}
	ctx := WithEmail(context.Background(), "admin@example.com")
	email, ok := EmailFrom(ctx)
	if !ok || email != "admin@example.com" {
		t.Fatalf("EmailFrom = %q, %v", email, ok)
	}
}
