package history

import (
	"time"

	"vindecoder/internal/domain/vehicle"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Entries []entry `json:"entries" doc:"Недавние поиски, новые первыми"`
}

type entry struct {
	Index      int       `json:"index" example:"0"`
	VIN        string    `json:"vin" example:"1HGCM82633A004352"`
	Timestamp  int64     `json:"timestamp" example:"1700000000000" doc:"Время поиска, миллисекунды Unix"`
	SearchedAt time.Time `json:"searched_at"`
}

type selectInput struct {
	Index int `path:"index" minimum:"0" example:"0" doc:"Позиция в истории"`
}

type selectOutput struct {
	Body selectResponse
}

type selectResponse struct {
	VIN      string            `json:"vin"`
	Record   vehicle.Record    `json:"record"`
	Sections []vehicle.Section `json:"sections"`
}
