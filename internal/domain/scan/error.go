package scan

import "errors"

var (
	ErrCameraInit    = errors.New("camera initialization failed")
	ErrSessionActive = errors.New("scan session already active")
	ErrNoResult      = errors.New("scan finished without result")
)

// MessageCameraInit - сообщение пользователю при ошибке запуска камеры
const MessageCameraInit = "Camera initialization failed. Please ensure you've granted camera permissions."

// UserMessage переводит ошибку сканирования в сообщение для пользователя
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCameraInit):
		return MessageCameraInit
	case errors.Is(err, ErrSessionActive):
		return "Scanner is already running."
	case errors.Is(err, ErrNoResult):
		return "No VIN barcode was recognized."
	default:
		return "Scanning stopped unexpectedly."
	}
}
