package service

import "time"

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: the signed payload carries everything needed to
// re-derive identity, so there is no server-side session store and no
// revocation before expiry.
type TokenService interface {
	// Issue creates a signed token whose subject is the given username,
	// valid for the configured access token duration.
	Issue(subject string) (string, error)

	// Verify checks signature and expiry and returns the token's subject.
	// It fails only for malformed, tampered or expired tokens.
	Verify(token string) (string, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
