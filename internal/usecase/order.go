package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/domain/repository"
)

// UploadStager parks inbound payloads in the temporary upload area.
type UploadStager interface {
	Stage(originalName string, r io.Reader) (model.StagedFile, error)
	Sweep(staged []model.StagedFile)
}

// AttachmentPromoter moves staged batches into order directories.
type AttachmentPromoter interface {
	Promote(ctx context.Context, orderID int64, staged []model.StagedFile, offset int) ([]string, error)
	Discard(orderID int64) error
	RemoveBatch(relPaths []string)
}

// OrderUseCase orchestrates the order record store and the attachment
// stager/promoter pair. Creation runs insert, promotion, and the picture
// list write as one unit: the row write happens inside a store transaction
// and a failed promotion rolls it back, so no order commits with a broken
// attachment set.
type OrderUseCase struct {
	orders       repository.OrderRepository
	stager       UploadStager
	promoter     AttachmentPromoter
	logger       *slog.Logger
	storeTimeout time.Duration
	fileTimeout  time.Duration
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, stager UploadStager, promoter AttachmentPromoter, logger *slog.Logger, storeTimeout, fileTimeout time.Duration) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		stager:       stager,
		promoter:     promoter,
		logger:       logger,
		storeTimeout: storeTimeout,
		fileTimeout:  fileTimeout,
	}
}

func (u *OrderUseCase) withTimeout(ctx context.Context, hasFiles bool) (context.Context, context.CancelFunc) {
	budget := u.storeTimeout
	if hasFiles {
		budget += u.fileTimeout
	}
	if budget <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, budget)
}

// Create inserts the order and promotes any uploaded files under its
// identifier. Without uploads the insert alone completes the operation.
func (u *OrderUseCase) Create(ctx context.Context, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	if err := validateOrderDraft(draft); err != nil {
		return nil, err
	}

	staged, err := u.stageUploads(uploads)
	if err != nil {
		return nil, err
	}

	ctx, cancel := u.withTimeout(ctx, len(staged) > 0)
	defer cancel()

	var (
		attach      repository.AttachFunc
		promotedFor int64
	)
	if len(staged) > 0 {
		attach = func(ctx context.Context, orderID int64, _ []string) ([]string, error) {
			paths, err := u.promoter.Promote(ctx, orderID, staged, 0)
			if err != nil {
				return nil, err
			}
			promotedFor = orderID
			return paths, nil
		}
	}

	order, err := u.orders.Create(ctx, draft, attach)
	if err != nil {
		if promotedFor != 0 {
			// The row never committed, so the directory belongs to nobody.
			_ = u.promoter.Discard(promotedFor)
		}
		u.stager.Sweep(staged)
		return nil, err
	}

	return order, nil
}

// Get fetches one order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	ctx, cancel := u.withTimeout(ctx, false)
	defer cancel()
	return u.orders.GetByID(ctx, id)
}

// List returns all orders joined with their client's display name.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderListing, error) {
	ctx, cancel := u.withTimeout(ctx, false)
	defer cancel()
	return u.orders.List(ctx)
}

// Update replaces the scalar fields and appends any newly uploaded files,
// numbering them after the order's existing attachments. Two concurrent
// updates of one order can read the same existing count and collide on
// final filenames; there is no optimistic locking guarding that race.
func (u *OrderUseCase) Update(ctx context.Context, id int64, draft model.OrderDraft, uploads []*multipart.FileHeader) (*model.Order, error) {
	if err := validateOrderDraft(draft); err != nil {
		return nil, err
	}

	staged, err := u.stageUploads(uploads)
	if err != nil {
		return nil, err
	}

	ctx, cancel := u.withTimeout(ctx, len(staged) > 0)
	defer cancel()

	var (
		attach   repository.AttachFunc
		newPaths []string
	)
	if len(staged) > 0 {
		attach = func(ctx context.Context, orderID int64, existing []string) ([]string, error) {
			paths, err := u.promoter.Promote(ctx, orderID, staged, len(existing))
			if err != nil {
				return nil, err
			}
			newPaths = paths
			return append(append([]string{}, existing...), paths...), nil
		}
	}

	order, err := u.orders.Update(ctx, id, draft, attach)
	if err != nil {
		// Only this batch is rolled off disk; attachments the order
		// already owned stay put.
		u.promoter.RemoveBatch(newPaths)
		u.stager.Sweep(staged)
		return nil, err
	}

	return order, nil
}

// Delete removes the order row, then its attachment directory. A directory
// removal failure after the committed row delete is logged and swallowed:
// the row is already gone and there is nothing to re-create.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	ctx, cancel := u.withTimeout(ctx, true)
	defer cancel()

	pictures, err := u.orders.Delete(ctx, id)
	if err != nil {
		return err
	}

	if len(pictures) > 0 {
		if err := u.promoter.Discard(id); err != nil {
			u.logger.Error("order deleted but attachment cleanup failed",
				slog.Int64("order_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (u *OrderUseCase) stageUploads(uploads []*multipart.FileHeader) ([]model.StagedFile, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	staged := make([]model.StagedFile, 0, len(uploads))
	for _, fh := range uploads {
		src, err := fh.Open()
		if err != nil {
			u.stager.Sweep(staged)
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		f, err := u.stager.Stage(fh.Filename, src)
		src.Close()
		if err != nil {
			u.stager.Sweep(staged)
			return nil, err
		}
		staged = append(staged, f)
	}
	return staged, nil
}
