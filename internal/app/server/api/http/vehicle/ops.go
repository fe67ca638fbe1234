package vehicle

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) decodeOp() huma.Operation {
	return huma.Operation{
		OperationID: "vehicles-decode",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{vin}",
		Summary:     "Декодировать VIN",
		Description: "Проверяет VIN, запрашивает сервис декодирования и добавляет VIN в историю поиска.",
		Tags:        []string{"vehicles"},
		Errors: []int{
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
		},
		Middlewares: h.middleware,
	}
}
