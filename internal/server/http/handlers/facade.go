package handlers

import (
	"context"
	"mime/multipart"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

// ClientFacade describes client record capabilities required by handlers.
type ClientFacade interface {
	Clients(ctx context.Context) ([]model.Client, error)
	Client(ctx context.Context, id int64) (*model.Client, error)
	CreateClient(ctx context.Context, draft model.ClientDraft) (*model.Client, error)
	UpdateClient(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.OrderListing, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// HealthFacade reports store connectivity.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// CRMFacade aggregates the full set of operations used across handlers.
type CRMFacade interface {
	ClientFacade
	OrderFacade
	HealthFacade
}
