package scanner

import "strings"

// ParseCode извлекает данные штрихкода из строки вывода распознавателя.
// zbarcam без --raw печатает "CODE-39:1HGCM82633A123456", с --raw только данные.
func ParseCode(line string) string {
	line = strings.TrimSpace(line)
	if symbology, data, ok := strings.Cut(line, ":"); ok && isSymbology(symbology) {
		return strings.TrimSpace(data)
	}
	return line
}

func isSymbology(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
