package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials covers both an unknown identity and a wrong
// password. The two cases are deliberately indistinguishable to the
// caller so signin responses cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credential is the stored view of an identity the authenticator
// verifies against. PasswordHash is never the plaintext.
type Credential struct {
	UserID       string
	Username     string
	PasswordHash string
	Roles        []Role
}

// CredentialStore is the single-record lookup contract the
// authenticator needs from the user store.
type CredentialStore interface {
	FindByIdentity(ctx context.Context, username string) (Credential, error)
}

// Authenticator verifies username/password pairs against stored
// credentials. It keeps no state between calls: no lockout counter,
// no attempt tracking.
type Authenticator struct {
	store CredentialStore
}

func NewAuthenticator(store CredentialStore) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate returns the principal for a valid username/password
// pair, or ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (Principal, error) {
	cred, err := a.store.FindByIdentity(ctx, username)
	if err != nil {
		return Principal{}, ErrInvalidCredentials
	}
	if !CheckPassword(password, cred.PasswordHash) {
		return Principal{}, ErrInvalidCredentials
	}

	roles := cred.Roles
	if len(roles) == 0 {
		roles = DefaultRoles()
	}
	return Principal{
		UserID:   cred.UserID,
		Username: cred.Username,
		Roles:    roles,
	}, nil
}
