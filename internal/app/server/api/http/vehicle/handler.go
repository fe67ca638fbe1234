package vehicle

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vindecoder/internal/app/server/api/http/httperr"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
)

type Handler struct {
	decoder    vehicle.Decoder
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(decoder vehicle.Decoder, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		decoder:    decoder,
		log:        log.With(slog.String("component", "vehicle_api")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.decodeOp(), h.decode)
}

func (h *Handler) decode(ctx context.Context, input *decodeInput) (*decodeOutput, error) {
	code := vin.Normalize(input.VIN)

	rec, err := h.decoder.Decode(ctx, code)
	if err != nil {
		h.log.Debug("decode request failed", "vin", code, "error", err)
		return nil, httperr.FromDomain(err)
	}

	return &decodeOutput{
		Body: newDecodeResponse(code, rec),
	}, nil
}
