package attach

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
)

// Promoter moves staged files into per-order directories under the durable
// attachment root. A batch either promotes completely or leaves no trace:
// on the first failure, files already promoted for that batch are removed
// and the error names the file that broke.
type Promoter struct {
	root    string
	workers int
	logger  *slog.Logger
}

// NewPromoter creates a promoter with at most workers concurrent file moves.
func NewPromoter(root string, workers int, logger *slog.Logger) *Promoter {
	if workers <= 0 {
		workers = 1
	}
	return &Promoter{root: root, workers: workers, logger: logger}
}

// Promote moves the staged batch under <root>/<orderID>/ and returns the
// relative paths "<orderID>/Image-<n>-<original>" in input order. Numbering
// starts at offset+1 so an update continues after the order's existing
// attachments. Temp originals of promoted files are removed.
func (p *Promoter) Promote(ctx context.Context, orderID int64, staged []model.StagedFile, offset int) ([]string, error) {
	if len(staged) == 0 {
		return nil, nil
	}

	dir := filepath.Join(p.root, strconv.FormatInt(orderID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create order dir: %w", err)
	}

	relPaths := make([]string, len(staged))
	finalPaths := make([]string, len(staged))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, f := range staged {
		i, f := i, f
		name := fmt.Sprintf("Image-%d-%s", offset+i+1, f.OriginalName)
		relPaths[i] = strconv.FormatInt(orderID, 10) + "/" + name
		final := filepath.Join(dir, name)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := moveFile(f.TempPath, final); err != nil {
				return &domainErrors.PromoteError{File: f.OriginalName, Err: err}
			}
			finalPaths[i] = final
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.rollback(finalPaths)
		return nil, err
	}

	p.logger.Info("promoted attachments",
		slog.Int64("order_id", orderID),
		slog.Int("count", len(staged)),
	)
	return relPaths, nil
}

// Discard removes the order's attachment directory tree.
func (p *Promoter) Discard(orderID int64) error {
	dir := filepath.Join(p.root, strconv.FormatInt(orderID, 10))
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove order dir: %w", err)
	}
	p.logger.Info("removed attachment directory", slog.String("dir", dir))
	return nil
}

// RemoveBatch removes promoted files by their root-relative paths. Used
// when the store update for an already promoted batch does not commit.
func (p *Promoter) RemoveBatch(relPaths []string) {
	for _, rel := range relPaths {
		path := filepath.Join(p.root, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("failed to remove promoted file",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Root returns the durable attachment root directory.
func (p *Promoter) Root() string {
	return p.root
}

func (p *Promoter) rollback(finalPaths []string) {
	for _, path := range finalPaths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("failed to roll back promoted file",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}

// moveFile copies src to dst and removes src. A plain rename would not
// survive the temp root and attachment root living on different mounts.
func moveFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		in.Close()
		return err
	}

	_, err = io.Copy(out, in)
	in.Close()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}

	return os.Remove(src)
}
