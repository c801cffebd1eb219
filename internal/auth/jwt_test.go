package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"unified-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.AuthConfig{JWTSecret: "secret", TokenTTL: 24 * time.Hour})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return m
}

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	p := Principal{UserID: "u-1", Username: "alice", Roles: []Role{RoleUser, RoleAdmin}}
	tok, err := m.Issue(now, p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token string")
	}

	got, err := m.Validate(tok, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.UserID != p.UserID || got.Username != p.Username {
		t.Fatalf("unexpected principal: %+v", got)
	}
	if len(got.Roles) != 2 || got.Roles[0] != RoleUser || got.Roles[1] != RoleAdmin {
		t.Fatalf("unexpected roles: %v", got.Roles)
	}
}

func TestIssue_DefaultsRoles(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.Issue(now, Principal{UserID: "u-1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := m.Validate(tok, now)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(got.Roles) != 1 || got.Roles[0] != RoleUser {
		t.Fatalf("expected default role, got %v", got.Roles)
	}
}

func TestValidate_ExpiredIsExpiredNotSignatureInvalid(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.Issue(now, Principal{Username: "alice", Roles: []Role{RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = m.Validate(tok, now.Add(24*time.Hour+time.Minute))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedSignature(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	tok, err := m.Issue(now, Principal{Username: "alice", Roles: []Role{RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	sig := []byte(parts[2])
	// Flip the leading character so the decoded signature differs.
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Validate(tampered, now)
	if !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidate_WrongKeyIsSignatureInvalid(t *testing.T) {
	m := testManager(t)
	other, err := NewManager(config.AuthConfig{JWTSecret: "other-secret", TokenTTL: 24 * time.Hour})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	now := time.Unix(1700000000, 0).UTC()

	tok, err := other.Issue(now, Principal{Username: "alice", Roles: []Role{RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = m.Validate(tok, now)
	if !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := testManager(t)
	_, err := m.Validate("not-a-token", time.Unix(1700000000, 0).UTC())
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestValidate_RejectsUnknownRolesOnly(t *testing.T) {
	m := testManager(t)
	now := time.Unix(1700000000, 0).UTC()

	// Hand-sign a token whose claim set carries no known role.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: "u-1",
		Roles:  []string{"superuser"},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Validate(tok, now); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager(config.AuthConfig{TokenTTL: time.Hour}); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewManager(config.AuthConfig{JWTSecret: "s"}); err == nil {
		t.Fatalf("expected error for zero TTL")
	}
}
