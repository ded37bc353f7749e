package repository

import (
	"context"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

// AttachFunc produces the final picture path list for an order. It runs
// inside the same store transaction as the row write, after the order
// identifier is known; existing holds the paths already on the row (nil on
// create). Returning an error rolls the row write back.
type AttachFunc func(ctx context.Context, orderID int64, existing []string) ([]string, error)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, draft model.OrderDraft, attach AttachFunc) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.OrderListing, error)
	Update(ctx context.Context, id int64, draft model.OrderDraft, attach AttachFunc) (*model.Order, error)
	// Delete removes the row and returns its picture path list so the
	// caller can clean the attachment directory up.
	Delete(ctx context.Context, id int64) ([]string, error)
}
