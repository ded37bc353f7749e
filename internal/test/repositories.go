package test

import (
	"context"

	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/domain/repository"
)

// ClientRepositoryStub implements repository.ClientRepository with
// controllable behaviour and sensible defaults.
type ClientRepositoryStub struct {
	CreateFn        func(context.Context, model.ClientDraft) (*model.Client, error)
	GetByIDFn       func(context.Context, int64) (*model.Client, error)
	ListFn          func(context.Context) ([]model.Client, error)
	UpdateFn        func(context.Context, int64, model.ClientDraft) (*model.Client, error)
	DeleteFn        func(context.Context, int64) error
	ExistsByEmailFn func(context.Context, string) (bool, error)
}

func (s *ClientRepositoryStub) Create(ctx context.Context, draft model.ClientDraft) (*model.Client, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	return &model.Client{ID: 1, FirstName: draft.FirstName, LastName: draft.LastName, Email: draft.Email}, nil
}

func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Client{ID: id}, nil
}

func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Client{{ID: 1}}, nil
}

func (s *ClientRepositoryStub) Update(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, draft)
	}
	return &model.Client{ID: id, FirstName: draft.FirstName}, nil
}

func (s *ClientRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *ClientRepositoryStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if s.ExistsByEmailFn != nil {
		return s.ExistsByEmailFn(ctx, email)
	}
	return false, nil
}

// OrderRepositoryStub implements repository.OrderRepository with
// controllable behaviour and sensible defaults. The default Create and
// Update run the attach callback the way the real store does, so picture
// promotion paths are exercised.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, model.OrderDraft, repository.AttachFunc) (*model.Order, error)
	GetByIDFn func(context.Context, int64) (*model.Order, error)
	ListFn    func(context.Context) ([]model.OrderListing, error)
	UpdateFn  func(context.Context, int64, model.OrderDraft, repository.AttachFunc) (*model.Order, error)
	DeleteFn  func(context.Context, int64) ([]string, error)
}

func (s *OrderRepositoryStub) Create(ctx context.Context, draft model.OrderDraft, attach repository.AttachFunc) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft, attach)
	}
	order := &model.Order{ID: 1, Amount: draft.Amount, Status: draft.Status, ClientID: draft.ClientID, Description: draft.Description}
	if attach != nil {
		paths, err := attach(ctx, order.ID, nil)
		if err != nil {
			return nil, err
		}
		order.PictureURLs = paths
	}
	return order, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Order{ID: id, Amount: "10.00", Status: "open", ClientID: 1}, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.OrderListing, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.OrderListing{{Order: model.Order{ID: 1, Amount: "10.00", Status: "open", ClientID: 1}}}, nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, id int64, draft model.OrderDraft, attach repository.AttachFunc) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, draft, attach)
	}
	order := &model.Order{ID: id, Amount: draft.Amount, Status: draft.Status, ClientID: draft.ClientID, Description: draft.Description}
	if attach != nil {
		paths, err := attach(ctx, order.ID, nil)
		if err != nil {
			return nil, err
		}
		order.PictureURLs = paths
	}
	return order, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) ([]string, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil, nil
}

// FactoryStub hands out the repository stubs as a repository.Factory.
type FactoryStub struct {
	ClientsRepo *ClientRepositoryStub
	OrdersRepo  *OrderRepositoryStub
}

func (s FactoryStub) Clients() repository.ClientRepository {
	if s.ClientsRepo != nil {
		return s.ClientsRepo
	}
	return &ClientRepositoryStub{}
}

func (s FactoryStub) Orders() repository.OrderRepository {
	if s.OrdersRepo != nil {
		return s.OrdersRepo
	}
	return &OrderRepositoryStub{}
}
