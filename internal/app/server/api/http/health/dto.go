package health

// Input - у проверки состояния нет параметров
type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса и размер истории
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	History int    `json:"history" example:"3" doc:"Number of stored recent searches"`
}
