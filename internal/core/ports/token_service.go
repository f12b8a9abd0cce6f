package ports

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue mints a signed token asserting subject with a fixed time-to-live.
	Issue(subject string) (string, error)
	// Verify checks the token's signature and expiry. A bad token of any
	// kind yields ok=false; it is never an error.
	Verify(token string) (subject string, ok bool)
}

// PasswordHasher is a one-way, salted credential hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Malformed hashes
	// verify as false.
	Verify(plaintext, hash string) bool
}
