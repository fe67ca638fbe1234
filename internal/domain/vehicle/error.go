package vehicle

import "errors"

var (
	ErrDecodeFailed = errors.New("decode service returned no results")
	ErrTransport    = errors.New("decode request failed")
)

// Сообщения, которые показываются пользователю
const (
	MessageDecodeFailed = "Unable to decode VIN. Please check the number and try again."
	MessageTransport    = "An error occurred while decoding the VIN. Please try again."
)

// UserMessage переводит ошибку декодирования в сообщение для пользователя
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDecodeFailed):
		return MessageDecodeFailed
	default:
		return MessageTransport
	}
}
