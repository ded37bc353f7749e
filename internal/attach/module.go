package attach

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avolkou/crmdesk/internal/config"
)

// Module wires attachment staging and promotion for fx graphs.
var Module = fx.Options(
	fx.Provide(newStager),
	fx.Provide(newPromoter),
)

type params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStager(p params) *Stager {
	return NewStager(p.Config.TempUploadDir, p.Logger)
}

func newPromoter(p params) *Promoter {
	return NewPromoter(p.Config.AttachmentRoot, p.Config.FileWorkers, p.Logger)
}
