package auth

import "context"

type ctxKey struct{}

// WithPrincipal binds the principal to a request context. The binding
// lives exactly as long as the request; there is no ambient holder a
// later request could read a stale principal from.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the bound principal, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	if !ok || p.Username == "" {
		return Principal{}, false
	}
	return p, true
}
