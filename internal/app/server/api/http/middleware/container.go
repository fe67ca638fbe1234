package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает цепочки мидлварей для групп обработчиков.
// Базовые мидлвари входят в каждую цепочку, добавленные через Add
// попадают только в ближайшую Take.
type Container struct {
	base  huma.Middlewares
	extra huma.Middlewares
}

// NewContainer создает контейнер с общими для всех обработчиков мидлварями
func NewContainer(base ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{base: base}
}

// Add добавляет мидлварь в следующую цепочку
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.extra = append(mc.extra, middleware)
}

// Take возвращает базовые мидлвари вместе с добавленными и сбрасывает добавленные
func (mc *Container) Take() huma.Middlewares {
	chain := make(huma.Middlewares, 0, len(mc.base)+len(mc.extra))
	chain = append(chain, mc.base...)
	chain = append(chain, mc.extra...)
	mc.extra = nil
	return chain
}

// NoStore запрещает кэширование ответа: история меняется после каждого декодирования
func NoStore(ctx huma.Context, next func(huma.Context)) {
	ctx.SetHeader("Cache-Control", "no-store")
	next(ctx)
}
