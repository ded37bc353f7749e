package repository

import (
	"context"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

// ClientRepository describes persistence operations with clients.
type ClientRepository interface {
	Create(ctx context.Context, draft model.ClientDraft) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
