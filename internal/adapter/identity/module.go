package identity

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/config"
)

// Module exposes the remote identity client to the fx graph. The client is
// only constructed when remote auth mode is configured.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*HTTPClient, error) {
	if p.Config.AuthMode != config.AuthModeRemote {
		return nil, nil
	}
	return NewHTTPClient(p.Config.IdentityAddress, p.Logger)
}
