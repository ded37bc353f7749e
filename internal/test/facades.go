package test

import (
	"context"
	"mime/multipart"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

// ClientFacadeStub provides controllable behaviour for client endpoints.
type ClientFacadeStub struct {
	ClientsFn      func(context.Context) ([]model.Client, error)
	ClientFn       func(context.Context, int64) (*model.Client, error)
	CreateClientFn func(context.Context, model.ClientDraft) (*model.Client, error)
	UpdateClientFn func(context.Context, int64, model.ClientDraft) (*model.Client, error)
	DeleteClientFn func(context.Context, int64) error
}

func (s ClientFacadeStub) Clients(ctx context.Context) ([]model.Client, error) {
	if s.ClientsFn != nil {
		return s.ClientsFn(ctx)
	}
	return []model.Client{{ID: 1}}, nil
}

func (s ClientFacadeStub) Client(ctx context.Context, id int64) (*model.Client, error) {
	if s.ClientFn != nil {
		return s.ClientFn(ctx, id)
	}
	return &model.Client{ID: id}, nil
}

func (s ClientFacadeStub) CreateClient(ctx context.Context, draft model.ClientDraft) (*model.Client, error) {
	if s.CreateClientFn != nil {
		return s.CreateClientFn(ctx, draft)
	}
	return &model.Client{ID: 1, FirstName: draft.FirstName, LastName: draft.LastName, Email: draft.Email}, nil
}

func (s ClientFacadeStub) UpdateClient(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error) {
	if s.UpdateClientFn != nil {
		return s.UpdateClientFn(ctx, id, draft)
	}
	return &model.Client{ID: id, FirstName: draft.FirstName}, nil
}

func (s ClientFacadeStub) DeleteClient(ctx context.Context, id int64) error {
	if s.DeleteClientFn != nil {
		return s.DeleteClientFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn      func(context.Context) ([]model.OrderListing, error)
	OrderFn       func(context.Context, int64) (*model.Order, error)
	CreateOrderFn func(context.Context, model.OrderDraft, []*multipart.FileHeader) (*model.Order, error)
	UpdateOrderFn func(context.Context, int64, model.OrderDraft, []*multipart.FileHeader) (*model.Order, error)
	DeleteOrderFn func(context.Context, int64) error
}

func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.OrderListing, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.OrderListing{{Order: model.Order{ID: 1, Amount: "10.00", Status: "open", ClientID: 1}}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Amount: "10.00", Status: "open", ClientID: 1}, nil
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, draft, uploads)
	}
	return &model.Order{ID: 1, Amount: draft.Amount, Status: draft.Status, ClientID: draft.ClientID}, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, draft, uploads)
	}
	return &model.Order{ID: id, Amount: draft.Amount, Status: draft.Status, ClientID: draft.ClientID}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub simulates store connectivity checks.
type HealthFacadeStub struct {
	HealthFn func(context.Context) error
}

func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// CRMFacadeStub aggregates the stubs into the full handler facade.
type CRMFacadeStub struct {
	ClientFacadeStub
	OrderFacadeStub
	HealthFacadeStub
}
