package service

import "time"

// Claims is the identity carried by a validated access token.
type Claims struct {
	Username string // "sub" claim
	UserID   int64  // "id" claim
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: there is no revocation, a token stays valid until it expires.
type TokenService interface {
	// Issue creates a signed token for the user that expires after ttl.
	Issue(username string, userID int64, ttl time.Duration) (string, error)

	// Validate verifies signature and expiry and returns the subject.
	// Any failure wraps domainerrors.ErrUnauthenticated.
	Validate(tokenString string) (*Claims, error)

	// AccessTTL returns the lifetime used for login tokens.
	AccessTTL() time.Duration
}
