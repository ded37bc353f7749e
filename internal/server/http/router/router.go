package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avolkou/crmdesk/internal/config"
	"github.com/avolkou/crmdesk/internal/pkg/auth"
	"github.com/avolkou/crmdesk/internal/server/http/handlers"
	"github.com/avolkou/crmdesk/internal/server/http/middleware"
)

// Setup configures the gin router: CRUD for clients and orders, static
// serving of promoted attachments, and uniform bearer auth across all of
// them. Only the welcome and health endpoints stay public.
func Setup(facade handlers.CRMFacade, verifier auth.TokenVerifier, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.MaxUploadBytes

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	clientHandler := handlers.NewClientHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to the API")
	})
	engine.GET("/ping", healthHandler.Ping)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(verifier))

	clients := authed.Group("/clients")
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	orders := authed.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	authed.Static("/orderImages", cfg.AttachmentRoot)

	return engine
}
