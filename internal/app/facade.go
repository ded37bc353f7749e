package app

import (
	"context"
	"mime/multipart"

	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CRMFacade aggregates the client and order use cases behind one surface
// consumed by the HTTP handlers.
type CRMFacade struct {
	clients *usecase.ClientUseCase
	orders  *usecase.OrderUseCase
	health  HealthChecker
}

// NewCRMFacade constructs CRMFacade.
func NewCRMFacade(clients *usecase.ClientUseCase, orders *usecase.OrderUseCase, health HealthChecker) *CRMFacade {
	return &CRMFacade{clients: clients, orders: orders, health: health}
}

func (f *CRMFacade) Clients(ctx context.Context) ([]model.Client, error) {
	return f.clients.List(ctx)
}

func (f *CRMFacade) Client(ctx context.Context, id int64) (*model.Client, error) {
	return f.clients.Get(ctx, id)
}

func (f *CRMFacade) CreateClient(ctx context.Context, draft model.ClientDraft) (*model.Client, error) {
	return f.clients.Create(ctx, draft)
}

func (f *CRMFacade) UpdateClient(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error) {
	return f.clients.Update(ctx, id, draft)
}

func (f *CRMFacade) DeleteClient(ctx context.Context, id int64) error {
	return f.clients.Delete(ctx, id)
}

func (f *CRMFacade) Orders(ctx context.Context) ([]model.OrderListing, error) {
	return f.orders.List(ctx)
}

func (f *CRMFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *CRMFacade) CreateOrder(ctx context.Context, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	return f.orders.Create(ctx, draft, uploads)
}

func (f *CRMFacade) UpdateOrder(ctx context.Context, id int64, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	return f.orders.Update(ctx, id, draft, uploads)
}

func (f *CRMFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *CRMFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
