package usecase

import (
	"context"
	"time"

	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/domain/repository"
)

// ClientUseCase encapsulates client record operations.
type ClientUseCase struct {
	clients      repository.ClientRepository
	storeTimeout time.Duration
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository, storeTimeout time.Duration) *ClientUseCase {
	return &ClientUseCase{clients: clients, storeTimeout: storeTimeout}
}

func (u *ClientUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.storeTimeout)
}

// Create inserts a new client row. All fields are optional.
func (u *ClientUseCase) Create(ctx context.Context, draft model.ClientDraft) (*model.Client, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.clients.Create(ctx, draft)
}

// Get fetches one client by identifier.
func (u *ClientUseCase) Get(ctx context.Context, id int64) (*model.Client, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.clients.GetByID(ctx, id)
}

// List returns all clients ordered by identifier.
func (u *ClientUseCase) List(ctx context.Context) ([]model.Client, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.clients.List(ctx)
}

// Update replaces every mutable field of the client in one statement.
func (u *ClientUseCase) Update(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.clients.Update(ctx, id, draft)
}

// Delete removes the client. Deleting a client that still owns orders is
// refused with ErrClientInUse rather than cascading.
func (u *ClientUseCase) Delete(ctx context.Context, id int64) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.clients.Delete(ctx, id)
}
