package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"unified-backend/internal/auth"
)

func fixedClock() time.Time { return time.Unix(1700000000, 0).UTC() }

func TestRegister_Success(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo).WithClock(fixedClock)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "pw-123456", Name: "Alice",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.PasswordHash == "pw-123456" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if !auth.CheckPassword("pw-123456", u.PasswordHash) {
		t.Fatalf("stored hash must verify")
	}
	if len(u.Roles) != 1 || u.Roles[0] != string(auth.RoleUser) {
		t.Fatalf("expected default role, got %v", u.Roles)
	}
}

func TestRegister_UsernameTakenMakesNoMutation(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo).WithClock(fixedClock)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "other@example.com", Password: "pw"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("rejected signup must not create a record, have %d", len(all))
	}
}

func TestRegister_EmailTakenMakesNoMutation(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo).WithClock(fixedClock)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Username: "bob", Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("rejected signup must not create a record, have %d", len(all))
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo).WithClock(fixedClock)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@example.com", Password: "pw", Name: "Alice"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{
		Name:   "Alice L",
		Title:  "Engineer",
		Skills: []string{"go", "sql"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Alice L" || got.Title != "Engineer" {
		t.Fatalf("profile not applied: %+v", got)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("skills not applied: %v", got.Skills)
	}
	if got.Username != "alice" {
		t.Fatalf("username must not change via profile update")
	}
	if got.PasswordHash != u.PasswordHash {
		t.Fatalf("password hash must not change via profile update")
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepo()).WithClock(fixedClock)
	if _, err := svc.UpdateProfile(context.Background(), "missing", ProfileUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCredentialSource_FindByIdentity(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo).WithClock(fixedClock)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	cred, err := CredentialSource{Repo: repo}.FindByIdentity(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if cred.UserID != u.ID || cred.Username != "alice" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
	if len(cred.Roles) != 1 || cred.Roles[0] != auth.RoleUser {
		t.Fatalf("unexpected roles: %v", cred.Roles)
	}

	if _, err := (CredentialSource{Repo: repo}).FindByIdentity(ctx, "nobody"); err == nil {
		t.Fatalf("expected error for unknown identity")
	}
}
