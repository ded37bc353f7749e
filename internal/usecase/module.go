package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/attach"
	"github.com/avolkou/crmdesk/internal/config"
	"github.com/avolkou/crmdesk/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newClientUseCase,
	newOrderUseCase,
)

type clientParams struct {
	fx.In

	Clients repository.ClientRepository
	Config  *config.Config
}

func newClientUseCase(p clientParams) *ClientUseCase {
	return NewClientUseCase(p.Clients, p.Config.StoreTimeout)
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Stager   *attach.Stager
	Promoter *attach.Promoter
	Logger   *slog.Logger
	Config   *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Stager, p.Promoter, p.Logger, p.Config.StoreTimeout, p.Config.FileTimeout)
}
