package scan

// Observer получает события фильтра (метрики, логирование)
type Observer interface {
	Read(code string)
	Rejected(code string)
	Accepted(code string)
}

type nopObserver struct{}

func (nopObserver) Read(string)     {}
func (nopObserver) Rejected(string) {}
func (nopObserver) Accepted(string) {}
