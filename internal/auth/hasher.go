package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted, cost-parameterized digest.
// bcrypt salts internally, so hashing the same password twice yields
// different digests.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored digest.
// Any error, including a malformed digest read from storage, is a
// plain false: corrupt data must not crash the authentication path.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
