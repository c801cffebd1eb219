package auth

import (
	"errors"
	"time"

	"unified-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation failures, ordered from least to most trusted input:
// a malformed token never reached signature verification, a
// signature-invalid token failed it, an expired token passed it.
// Callers collapse all three to a single 401 at the HTTP boundary;
// the distinction exists for logging and tests.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Manager issues and validates signed bearer tokens.
// The signing key is fixed for the lifetime of the process; rotating it
// invalidates every outstanding token, which is the accepted cost of
// keeping the server session-free.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg config.AuthConfig) (*Manager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}, nil
}

// Issue mints a token for the principal with iat=now and exp=now+ttl.
func (m *Manager) Issue(now time.Time, p Principal) (string, error) {
	if p.Username == "" {
		return "", errors.New("principal username is required")
	}
	roles := p.Roles
	if len(roles) == 0 {
		roles = DefaultRoles()
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		UserID: p.UserID,
		Roles:  RoleStrings(roles),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Validate verifies the signature, then expiry, then decodes the
// principal. now is explicit so expiry behavior is testable.
func (m *Manager) Validate(tokenString string, now time.Time) (Principal, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Principal{}, classifyTokenError(err)
	}

	if claims.Subject == "" {
		return Principal{}, ErrTokenMalformed
	}
	roles := ParseRoles(claims.Roles)
	if len(roles) == 0 {
		// A token without a single known role grants nothing.
		return Principal{}, ErrTokenMalformed
	}

	return Principal{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Roles:    roles,
	}, nil
}

// classifyTokenError maps library errors onto the package sentinels.
// Signature errors are checked before expiry so a tampered token is
// never reported as merely expired, and an expired token (which passed
// signature verification) is never reported as tampered.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
