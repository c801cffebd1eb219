package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"unified-backend/internal/auth"
	"unified-backend/internal/users"

	"github.com/google/uuid"
)

// Service wraps project business rules. Mutations are owner-gated:
// only the owning principal (or an admin) may update or delete.
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

type ProjectInput struct {
	Name         string
	Description  string
	Status       string
	Tags         []string
	Technologies []string
	TechStack    []string
	Languages    []string
	GroupMembers []string
	Duration     string
	Type         string
	Category     string
	DocumentURL  string
	DocumentName string
}

func (in ProjectInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	switch in.Status {
	case "", StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: status must be %q or %q, got %q", ErrInvalidInput, StatusActive, StatusCompleted, in.Status)
	}
}

// Create stamps the owner from the calling principal.
func (s *Service) Create(ctx context.Context, owner auth.Principal, in ProjectInput) (Project, error) {
	if err := in.validate(); err != nil {
		return Project{}, err
	}
	status := in.Status
	if status == "" {
		status = StatusActive
	}

	now := s.now().UTC()
	p := Project{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Status:       status,
		Tags:         users.StringList(in.Tags),
		Technologies: users.StringList(in.Technologies),
		TechStack:    users.StringList(in.TechStack),
		Languages:    users.StringList(in.Languages),
		GroupMembers: users.StringList(in.GroupMembers),
		Duration:     in.Duration,
		Type:         in.Type,
		Category:     in.Category,
		OwnerID:      owner.UserID,
		DocumentURL:  in.DocumentURL,
		DocumentName: in.DocumentName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, caller auth.Principal, id string, in ProjectInput) (Project, error) {
	if err := in.validate(); err != nil {
		return Project{}, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if !canMutate(caller, p) {
		return Project{}, ErrForbidden
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	if in.Status != "" {
		p.Status = in.Status
	}
	p.Tags = users.StringList(in.Tags)
	p.Technologies = users.StringList(in.Technologies)
	p.TechStack = users.StringList(in.TechStack)
	p.Languages = users.StringList(in.Languages)
	p.GroupMembers = users.StringList(in.GroupMembers)
	p.Duration = in.Duration
	p.Type = in.Type
	p.Category = in.Category
	p.DocumentURL = in.DocumentURL
	p.DocumentName = in.DocumentName
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, caller auth.Principal, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(caller, p) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func canMutate(caller auth.Principal, p Project) bool {
	if auth.HasRole(caller.Roles, auth.RoleAdmin) {
		return true
	}
	return caller.UserID != "" && caller.UserID == p.OwnerID
}
