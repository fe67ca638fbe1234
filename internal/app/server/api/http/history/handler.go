package history

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vindecoder/internal/app/server/api/http/httperr"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
)

// Servicer - операции с историей, которые нужны API
type Servicer interface {
	History() []history.Entry
	SelectHistory(ctx context.Context, index int) (vehicle.Record, error)
}

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "history_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.selectOp(), h.selectEntry)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	entries := h.service.History()

	out := make([]entry, 0, len(entries))
	for i, e := range entries {
		out = append(out, entry{
			Index:      i,
			VIN:        e.VIN,
			Timestamp:  e.Timestamp,
			SearchedAt: e.Time().UTC(),
		})
	}

	return &listOutput{
		Body: listResponse{Entries: out},
	}, nil
}

func (h *Handler) selectEntry(ctx context.Context, input *selectInput) (*selectOutput, error) {
	entries := h.service.History()
	if input.Index >= len(entries) {
		return nil, httperr.FromDomain(history.ErrEntryNotFound)
	}
	code := entries[input.Index].VIN

	rec, err := h.service.SelectHistory(ctx, input.Index)
	if err != nil {
		h.log.Debug("history decode failed", "index", input.Index, "error", err)
		return nil, httperr.FromDomain(err)
	}

	return &selectOutput{
		Body: selectResponse{
			VIN:      code,
			Record:   rec,
			Sections: vehicle.Sections(rec),
		},
	}, nil
}
