package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore resolves a username to its shared secret. Implementations
// are read-only after initialization; a production deployment can substitute
// a real identity provider without touching the session logic.
type CredentialStore interface {
	Lookup(username string) (secret string, ok bool)
}

// StaticCredentials is a fixed username -> secret mapping
type StaticCredentials map[string]string

// Ensure StaticCredentials implements CredentialStore
var _ CredentialStore = (StaticCredentials)(nil)

// Lookup returns the secret for a username
func (c StaticCredentials) Lookup(username string) (string, bool) {
	secret, ok := c[username]
	return secret, ok
}

// DefaultCredentials returns the built-in beta tester accounts
func DefaultCredentials() StaticCredentials {
	return StaticCredentials{
		"tester1": "password123",
		"tester2": "password456",
		"tester3": "password789",
		"admin":   "admin123",
	}
}

// verifySecret compares a candidate password against the stored secret.
// Secrets prefixed "$2" are treated as bcrypt hashes; anything else is
// compared in constant time as plaintext. Rejects on any mismatch.
func verifySecret(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
