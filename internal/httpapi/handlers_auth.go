package httpapi

import (
	"errors"
	"net/http"
	"time"

	"unified-backend/internal/auth"
	"unified-backend/internal/projects"
	"unified-backend/internal/users"
	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services,
// build a Result.
type Handlers struct {
	Tokens   *auth.Manager
	Authn    *auth.Authenticator
	Users    *users.Service
	Projects *projects.Service
}

type signinRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signinResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// Signin verifies credentials and issues a token. Unknown username and
// wrong password produce the identical rejection.
func (h Handlers) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(http.StatusBadRequest, "username and password are required").Write(c)
		return
	}

	p, err := h.Authn.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			Fail(http.StatusBadRequest, "invalid username or password").Write(c)
			return
		}
		logger.FromGin(c).Error("signin failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}

	tok, err := h.Tokens.Issue(time.Now(), p)
	if err != nil {
		logger.FromGin(c).Error("token issuance failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}

	OK(signinResponse{
		Token:    tok,
		Username: p.Username,
		Roles:    auth.RoleStrings(p.Roles),
	}).Write(c)
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// Signup registers a new account. It deliberately does not issue a
// token; clients sign in as a second step.
func (h Handlers) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(http.StatusBadRequest, "username, a valid email and a password of at least 6 characters are required").Write(c)
		return
	}

	_, err := h.Users.Register(c.Request.Context(), users.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken):
			Fail(http.StatusBadRequest, "username is already taken").Write(c)
		case errors.Is(err, users.ErrEmailTaken):
			Fail(http.StatusBadRequest, "email is already in use").Write(c)
		default:
			logger.FromGin(c).Error("signup failed", "err", err)
			Fail(http.StatusInternalServerError, "an unexpected error occurred during registration").Write(c)
		}
		return
	}

	Message("user registered successfully").Write(c)
}
