package vehicle

import "context"

// Sentinel-значения сервиса декодирования, которые означают "нет данных"
const (
	SentinelZero          = "0"
	SentinelNotApplicable = "Not Applicable"
)

// Record - атрибуты автомобиля: имя переменной vPIC -> значение
type Record map[string]string

// Result - элемент списка Results в ответе сервиса декодирования
type Result struct {
	Variable   string  `json:"Variable"`
	Value      *string `json:"Value"`
	VariableID int     `json:"VariableId,omitempty"`
}

// DecodeResponse - ответ сервиса декодирования
type DecodeResponse struct {
	Count          int      `json:"Count"`
	Message        string   `json:"Message"`
	SearchCriteria string   `json:"SearchCriteria"`
	Results        []Result `json:"Results"`
}

// Decoder декодирует VIN в набор атрибутов
type Decoder interface {
	Decode(ctx context.Context, vin string) (Record, error)
}

// IsSentinel проверяет, означает ли значение отсутствие данных
func IsSentinel(value string) bool {
	return value == "" || value == SentinelZero || value == SentinelNotApplicable
}

// FromResults собирает Record из списка Results, пропуская пустые и sentinel-значения
func FromResults(results []Result) Record {
	rec := make(Record, len(results))
	for _, item := range results {
		if item.Value == nil || IsSentinel(*item.Value) {
			continue
		}
		rec[item.Variable] = *item.Value
	}
	return rec
}

// Get возвращает значение атрибута, если оно есть
func (r Record) Get(variable string) (string, bool) {
	v, ok := r[variable]
	if !ok || IsSentinel(v) {
		return "", false
	}
	return v, true
}
