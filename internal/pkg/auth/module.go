package auth

import (
	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/config"
)

// Module provides the local token verifier. The remote variant lives in the
// identity adapter; di selects between them by configured auth mode.
var Module = fx.Provide(newLocalVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newLocalVerifier(p verifierParams) *JWTVerifier {
	return NewJWTVerifier(p.Config.JWTSecret)
}
