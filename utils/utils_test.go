package utils_test

import (
	"testing"

	"github.com/ricpacca/magicset/utils"
	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	t.Run("nil pointer is zero", func(t *testing.T) {
		var p *int
		assert.True(t, utils.IsZero(p))
	})

	t.Run("non nil pointer is not zero", func(t *testing.T) {
		v := 1
		assert.False(t, utils.IsZero(&v))
	})

	t.Run("zero struct", func(t *testing.T) {
		type point struct{ X, Y int }
		assert.True(t, utils.IsZero(point{}))
		assert.False(t, utils.IsZero(point{X: 1}))
	})
}
