package users

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// User is the durable account record. PasswordHash is never serialized
// into any response and never holds the plaintext.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	Course         string `json:"course,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`

	FrontendTechnologies string     `json:"frontendTechnologies,omitempty"`
	BackendTechnologies  string     `json:"backendTechnologies,omitempty"`
	DatabaseTechnologies string     `json:"databaseTechnologies,omitempty"`
	DevopsTools          string     `json:"devopsTools,omitempty"`
	ProgrammingLanguages StringList `json:"programmingLanguages,omitempty"`
	Skills               StringList `json:"skills,omitempty"`

	Roles StringList `json:"roles"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StringList stores a string slice as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("users: cannot scan %T into StringList", src)
	}
}

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already in use")
)
