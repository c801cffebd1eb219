package projects

import (
	"errors"
	"time"

	"unified-backend/internal/users"
)

// Project statuses. Keep the wire values stable.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`

	Tags         users.StringList `json:"tags,omitempty"`
	Technologies users.StringList `json:"technologies,omitempty"`
	TechStack    users.StringList `json:"techStack,omitempty"`
	Languages    users.StringList `json:"languages,omitempty"`
	GroupMembers users.StringList `json:"groupMembers,omitempty"`

	Duration string `json:"duration,omitempty"`
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`

	OwnerID      string `json:"ownerId"`
	DocumentURL  string `json:"documentUrl,omitempty"`
	DocumentName string `json:"documentName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrNotFound     = errors.New("project not found")
	ErrForbidden    = errors.New("not the project owner")
	ErrInvalidInput = errors.New("invalid project input")
)
