package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/config"
	"github.com/avolkou/crmdesk/internal/pkg/auth"
	"github.com/avolkou/crmdesk/internal/server/http/handlers"
)

// Module registers HTTP router construction for the fx runtime.
var Module = fx.Provide(setupRouter)

type routerParams struct {
	fx.In

	Facade   handlers.CRMFacade
	Verifier auth.TokenVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

func setupRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Verifier, p.Config, p.Logger)
}
