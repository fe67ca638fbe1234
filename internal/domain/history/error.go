package history

import "errors"

var (
	ErrNotFound      = errors.New("history not found")
	ErrEntryNotFound = errors.New("history entry not found")
)
