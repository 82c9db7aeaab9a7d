package auth

// TokenVerifier validates bearer tokens and extracts the owner
// identity. Everything past the middleware works with the plain owner
// ID; no request handler sees a token.
type TokenVerifier interface {
	// Verify parses and validates a token, returning the owner ID from
	// its subject claim.
	Verify(tokenString string) (string, error)
}
