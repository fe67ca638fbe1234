package history

import "time"

// Key - ключ, под которым хранится история
const Key = "vinHistory"

// MaxEntries - сколько последних поисков хранится
const MaxEntries = 10

// Entry - запись истории поиска
type Entry struct {
	VIN       string `json:"vin"`
	Timestamp int64  `json:"timestamp"` // epoch ms
}

// Time возвращает момент поиска
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Prepend добавляет запись в начало списка и обрезает его до MaxEntries
func Prepend(entries []Entry, e Entry) []Entry {
	keep := len(entries)
	if keep > MaxEntries-1 {
		keep = MaxEntries - 1
	}

	out := make([]Entry, 0, keep+1)
	out = append(out, e)
	out = append(out, entries[:keep]...)
	return out
}
