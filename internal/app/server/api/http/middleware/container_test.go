package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_Take(t *testing.T) {
	// Arrange
	var calls []string
	mark := func(name string) func(huma.Context, func(huma.Context)) {
		return func(ctx huma.Context, next func(huma.Context)) {
			calls = append(calls, name)
			next(ctx)
		}
	}
	mc := NewContainer(mark("base"))
	mc.Add(mark("extra"))

	// Act
	first := mc.Take()
	second := mc.Take()

	// Assert
	assert.Len(t, first, 2)
	assert.Len(t, second, 1)

	for _, mw := range first {
		mw(nil, func(huma.Context) {})
	}
	assert.Equal(t, []string{"base", "extra"}, calls)
}

func TestContainer_TakeDoesNotShareBase(t *testing.T) {
	// Arrange
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }
	mc := NewContainer(noop)
	mc.Add(noop)

	// Act
	first := mc.Take()
	first[0] = nil
	second := mc.Take()

	// Assert
	assert.NotNil(t, second[0])
}

func TestContainer_Empty(t *testing.T) {
	assert.Empty(t, NewContainer().Take())
}
