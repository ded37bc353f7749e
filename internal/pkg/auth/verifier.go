package auth

import "context"

// TokenVerifier is the gate in front of authenticated routes: given a raw
// bearer token it answers allow (nil) or deny (ErrInvalidToken). Any other
// error is a verifier fault, not a verdict.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) error
	Name() string
}
