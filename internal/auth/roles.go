package auth

// Role is an enumerated capability tag carried in token claims.
// Keep the wire values stable; they are part of the token contract.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DefaultRoles is the claim set granted at signup.
func DefaultRoles() []Role { return []Role{RoleUser} }

// ParseRole maps a wire string onto the enumeration.
// Unknown strings are rejected so a typo in stored data can never
// grant (or be matched against) a privilege.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// ParseRoles keeps the known roles from a wire claim set, dropping
// anything unrecognized.
func ParseRoles(ss []string) []Role {
	out := make([]Role, 0, len(ss))
	for _, s := range ss {
		if r, ok := ParseRole(s); ok {
			out = append(out, r)
		}
	}
	return out
}

// RoleStrings maps a role set back onto its wire values.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// HasRole reports whether the set contains the given role.
func HasRole(roles []Role, want Role) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
