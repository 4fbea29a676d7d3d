package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, "emp-1", TokenTTL)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	employeeID, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if employeeID != "emp-1" {
		t.Fatalf("expected emp-1, got %q", employeeID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "emp-1", TokenTTL)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("secret", "emp-1", -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected malformed token to fail")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Stronger123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := CheckPassword(hash, "Stronger123"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleHR, RoleSupervisor, RoleOperator, RoleObserver} {
		if !ValidRole(role) {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	if ValidRole("manager") {
		t.Fatal("expected unknown role to be invalid")
	}
}
