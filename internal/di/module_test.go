package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/adapter/identity"
	"github.com/avolkou/crmdesk/internal/app"
	"github.com/avolkou/crmdesk/internal/config"
	"github.com/avolkou/crmdesk/internal/domain/repository"
	"github.com/avolkou/crmdesk/internal/pkg/auth"
	"github.com/avolkou/crmdesk/internal/storage/postgres"
	"github.com/avolkou/crmdesk/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		AuthMode:        config.AuthModeLocal,
		AttachmentRoot:  t.TempDir(),
		TempUploadDir:   t.TempDir(),
		MaxUploadBytes:  1 << 20,
		FileWorkers:     1,
		StoreTimeout:    time.Second,
		FileTimeout:     time.Second,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	clientRepo := &test.ClientRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.CRMFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.ClientRepository(clientRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected crm facade instance")
	}
}

func TestSelectVerifier(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	local := auth.NewJWTVerifier("secret")

	t.Run("local mode", func(t *testing.T) {
		cfg := &config.Config{AuthMode: config.AuthModeLocal}
		v := selectVerifier(cfg, local, nil)
		if v == nil || v.Name() != "jwt-local" {
			t.Fatalf("expected local verifier, got %v", v)
		}
	})

	t.Run("remote mode", func(t *testing.T) {
		cfg := &config.Config{AuthMode: config.AuthModeRemote, IdentityAddress: "http://identity.local"}
		remote, err := identity.NewHTTPClient(cfg.IdentityAddress, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v := selectVerifier(cfg, local, remote)
		if v == nil || v.Name() != "identity-remote" {
			t.Fatalf("expected remote verifier, got %v", v)
		}
	})
}
