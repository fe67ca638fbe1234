package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vindecoder/internal/domain/history"
)

// HistoryLister отдает текущую историю поиска
type HistoryLister interface {
	History() []history.Entry
}

type Handler struct {
	history    HistoryLister
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(history HistoryLister, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		history:    history,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			History: len(h.history.History()),
		},
	}, nil
}
