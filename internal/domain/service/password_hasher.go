package service

// PasswordHasher hashes and verifies email sign-in passwords.
type PasswordHasher interface {
	// Hash validates the password strength and returns a salted hash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports the first rule the password breaks.
	ValidatePasswordStrength(password string) error
}
