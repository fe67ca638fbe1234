package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Состояние сервиса",
		Description: "Сообщает, что сервис отвечает, и сколько VIN сейчас хранится в истории недавних поисков.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
