// Package service defines domain service contracts whose concrete
// implementations live under internal/infra.
package service

// PasswordHasher abstracts password hashing so the use case layer does not
// depend on a specific algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks the password against the configured
	// strength policy before it is ever hashed.
	ValidatePasswordStrength(password string) error
}
