package attach

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

// Stager parks uploaded payloads in a shared temporary directory until they
// are promoted into an order's attachment directory. Temp names carry a
// timestamp and a random suffix so concurrent requests never collide.
type Stager struct {
	root   string
	logger *slog.Logger
}

// NewStager creates a stager writing under root.
func NewStager(root string, logger *slog.Logger) *Stager {
	return &Stager{root: root, logger: logger}
}

// Stage writes one payload into the temp directory, creating it if absent.
// The returned staged file must either be promoted or swept.
func (s *Stager) Stage(originalName string, r io.Reader) (model.StagedFile, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return model.StagedFile{}, fmt.Errorf("create temp dir: %w", err)
	}

	base := filepath.Base(originalName)
	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], base)
	path := filepath.Join(s.root, name)

	dst, err := os.Create(path)
	if err != nil {
		return model.StagedFile{}, fmt.Errorf("stage %s: %w", base, err)
	}

	size, err := io.Copy(dst, r)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return model.StagedFile{}, fmt.Errorf("stage %s: %w", base, err)
	}

	s.logger.Debug("staged upload",
		slog.String("file", base),
		slog.String("temp", path),
		slog.Int64("size", size),
	)

	return model.StagedFile{OriginalName: base, TempPath: path, Size: size}, nil
}

// Sweep removes staged files that were never promoted. Best effort: a file
// already consumed by promotion is simply gone.
func (s *Stager) Sweep(staged []model.StagedFile) {
	for _, f := range staged {
		if err := os.Remove(f.TempPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to sweep staged file",
				slog.String("temp", f.TempPath),
				slog.String("error", err.Error()),
			)
		}
	}
}
