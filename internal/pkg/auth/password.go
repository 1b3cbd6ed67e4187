package auth

// PasswordVerifier is the single point through which stored credentials are
// compared against supplied ones. Callers never compare password strings
// directly, so a hashed scheme can replace PlaintextVerifier without touching
// the service layer.
type PasswordVerifier interface {
	// Verify reports whether the supplied password matches the stored one.
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares passwords with exact string equality.
// An empty stored password matches only an empty supplied password; it is
// never treated as a wildcard.
type PlaintextVerifier struct{}

// NewPlaintextVerifier creates a new PlaintextVerifier
func NewPlaintextVerifier() PlaintextVerifier {
	return PlaintextVerifier{}
}

// Verify implements PasswordVerifier
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}
