package history

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "history-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "Недавние поиски",
		Tags:        []string{"history"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) selectOp() huma.Operation {
	return huma.Operation{
		OperationID: "history-decode",
		Method:      http.MethodPost,
		Path:        "/api/v1/history/{index}/decode",
		Summary:     "Повторно декодировать VIN из истории",
		Description: "Декодирует VIN из указанной позиции истории. Новый поиск добавляется в начало истории.",
		Tags:        []string{"history"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
		},
		Middlewares: h.middleware,
	}
}
