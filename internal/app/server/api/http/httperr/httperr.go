// Package httperr переводит доменные ошибки в ответы huma
package httperr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"vindecoder/internal/app/client"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
)

// FromDomain возвращает huma.StatusError для известной доменной ошибки
func FromDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vin.ErrInvalidVIN):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, client.ErrBusy):
		return huma.Error409Conflict("A VIN is already being decoded. Please wait.")
	case errors.Is(err, vehicle.ErrDecodeFailed):
		return huma.Error422UnprocessableEntity(vehicle.MessageDecodeFailed)
	case errors.Is(err, vehicle.ErrTransport):
		return huma.Error502BadGateway(vehicle.MessageTransport)
	case errors.Is(err, history.ErrEntryNotFound):
		return huma.Error404NotFound(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
