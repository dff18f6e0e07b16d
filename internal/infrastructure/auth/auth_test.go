package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/infrastructure/config"
)

func TestJWTManager_IssueAndParse(t *testing.T) {
	m, err := NewJWTManager(config.JWTConfig{Secret: "s3cret", Issuer: "e-certidoes", TTL: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := m.Issue(entities.User{ID: 7, Email: "ana@test.com", Role: entities.UserRoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ana@test.com" || claims.Role != entities.UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_RejectsExpiredAndForeignTokens(t *testing.T) {
	cfg := config.JWTConfig{Secret: "s3cret", Issuer: "e-certidoes", TTL: time.Hour}
	m, _ := NewJWTManager(cfg)
	issued := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.Issue(entities.User{ID: 7, Role: entities.UserRoleCliente})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}

	other, _ := NewJWTManager(config.JWTConfig{Secret: "other", Issuer: "e-certidoes", TTL: time.Hour})
	other.now = func() time.Time { return issued }
	m.now = func() time.Time { return issued }
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	if _, err := NewJWTManager(config.JWTConfig{TTL: time.Hour}); err == nil {
		t.Fatalf("expected error without secret")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Compare(hash, "s3cret"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error on empty password")
	}
}
