package vehicle

import (
	"vindecoder/internal/domain/vehicle"
)

type decodeInput struct {
	VIN string `path:"vin" example:"1HGCM82633A004352" doc:"VIN, 17 символов без I, O, Q"`
}

type decodeOutput struct {
	Body decodeResponse
}

type decodeResponse struct {
	VIN      string            `json:"vin" doc:"Нормализованный VIN"`
	Record   vehicle.Record    `json:"record" doc:"Атрибуты автомобиля без пустых значений"`
	Sections []vehicle.Section `json:"sections" doc:"Шесть секций для отображения"`
}

func newDecodeResponse(code string, rec vehicle.Record) decodeResponse {
	return decodeResponse{
		VIN:      code,
		Record:   rec,
		Sections: vehicle.Sections(rec),
	}
}
