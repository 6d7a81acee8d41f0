// Package auth provides credential hashing and browser-session state for the
// employee and applicant flows. Password hashing uses bcrypt with a per-call
// random salt; verification re-derives the hash via constant-time comparison
// rather than comparing hash strings, so two hashes of the same password
// never need to match.
package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is the minimum accepted password length for the
// set-password flow.
const MinPasswordLen = 4

// HashPassword returns a bcrypt hash of pw with a fresh random salt.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether pw matches the stored bcrypt hash.
func CheckPassword(pw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
