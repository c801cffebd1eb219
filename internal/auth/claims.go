package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// Subject carries the username; UserID carries the stored record id.
// Tokens are self-contained: no server-side session backs them, so a
// claim set must be enough to rebuild the principal on every request.
type Claims struct {
	jwt.RegisteredClaims

	UserID string   `json:"uid"`
	Roles  []string `json:"roles"`
}

// Principal is the authenticated identity bound to a request after
// successful token validation. It is transient; nothing persists it.
type Principal struct {
	UserID   string
	Username string
	Roles    []Role
}
