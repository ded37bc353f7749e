package test

import "context"

// VerifierStub implements auth.TokenVerifier with controllable outcomes.
type VerifierStub struct {
	VerifyFn func(context.Context, string) error
}

func (s VerifierStub) Verify(ctx context.Context, token string) error {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	return nil
}

func (s VerifierStub) Name() string {
	return "stub"
}
