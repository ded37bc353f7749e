package di

import (
	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/adapter/identity"
	"github.com/avolkou/crmdesk/internal/app"
	"github.com/avolkou/crmdesk/internal/attach"
	"github.com/avolkou/crmdesk/internal/config"
	"github.com/avolkou/crmdesk/internal/logger"
	"github.com/avolkou/crmdesk/internal/pkg/auth"
	"github.com/avolkou/crmdesk/internal/server/http/handlers"
	"github.com/avolkou/crmdesk/internal/server/http/router"
	"github.com/avolkou/crmdesk/internal/storage/postgres"
	"github.com/avolkou/crmdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		identity.Module,
		postgres.Module,
		attach.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(selectVerifier),
		fx.Provide(func(f *app.CRMFacade) handlers.CRMFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// selectVerifier picks the configured token verification strategy: the
// local shared-secret check or the remote identity provider.
func selectVerifier(cfg *config.Config, local *auth.JWTVerifier, remote *identity.HTTPClient) auth.TokenVerifier {
	if cfg.AuthMode == config.AuthModeRemote {
		return remote
	}
	return local
}
