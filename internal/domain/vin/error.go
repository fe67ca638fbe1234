package vin

import (
	"errors"
	"fmt"
)

// ErrInvalidVIN - общая ошибка формата, ее оборачивают все ошибки проверки VIN
var ErrInvalidVIN = errors.New("invalid vin")

var (
	ErrInvalidLength     = fmt.Errorf("%w: vin must be exactly 17 characters", ErrInvalidVIN)
	ErrInvalidCharacters = fmt.Errorf("%w: vin contains characters outside A-H, J-N, P, R-Z, 0-9", ErrInvalidVIN)
)
