package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"unified-backend/internal/auth"

	"github.com/google/uuid"
)

// Service wraps account business rules: registration with uniqueness
// checks, profile reads/updates, and admin account management.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Name     string
}

// Register creates a new account. Both uniqueness checks run before
// any write so a rejected signup leaves no record behind. The stored
// secret is hashed; the default role claim is granted.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return User{}, fmt.Errorf("username, email and password are required")
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("username lookup: %w", err)
	}
	if taken {
		return User{}, ErrUsernameTaken
	}
	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("email lookup: %w", err)
	}
	if taken {
		return User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Roles:        StringList{string(auth.RoleUser)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ProfileUpdate carries the self-service editable fields. Identity
// fields (username, roles, password) are not updatable through it.
type ProfileUpdate struct {
	Name                 string
	Title                string
	Course               string
	Specialization       string
	GraduationYear       string
	FrontendTechnologies string
	BackendTechnologies  string
	DatabaseTechnologies string
	DevopsTools          string
	ProgrammingLanguages []string
	Skills               []string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	u.Name = upd.Name
	u.Title = upd.Title
	u.Course = upd.Course
	u.Specialization = upd.Specialization
	u.GraduationYear = upd.GraduationYear
	u.FrontendTechnologies = upd.FrontendTechnologies
	u.BackendTechnologies = upd.BackendTechnologies
	u.DatabaseTechnologies = upd.DatabaseTechnologies
	u.DevopsTools = upd.DevopsTools
	u.ProgrammingLanguages = StringList(upd.ProgrammingLanguages)
	u.Skills = StringList(upd.Skills)
	u.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CredentialSource adapts the user repository to the authenticator's
// single-record lookup contract.
type CredentialSource struct {
	Repo Repository
}

func (c CredentialSource) FindByIdentity(ctx context.Context, username string) (auth.Credential, error) {
	u, err := c.Repo.FindByUsername(ctx, username)
	if err != nil {
		return auth.Credential{}, err
	}
	roles := auth.ParseRoles(u.Roles)
	if len(roles) == 0 {
		roles = auth.DefaultRoles()
	}
	return auth.Credential{
		UserID:       u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Roles:        roles,
	}, nil
}
