package vin

import (
	"fmt"
	"regexp"
	"strings"
)

// Length - длина VIN
const Length = 17

// Pattern - алфавит VIN без I, O, Q
const Pattern = `^[A-HJ-NPR-Z0-9]{17}$`

var vinRe = regexp.MustCompile(Pattern)

// IsValid проверяет строку на соответствие формату VIN
func IsValid(code string) bool {
	return vinRe.MatchString(code)
}

// Normalize приводит введенный пользователем VIN к каноническому виду
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// Validate возвращает причину, по которой строка не является VIN
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("%w (got %d)", ErrInvalidLength, len(code))
	}

	if !IsValid(code) {
		return ErrInvalidCharacters
	}

	return nil
}
