package keyvalue_test

import (
	"testing"

	"github.com/ricpacca/magicset/keyvalue"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	type structKey struct {
		A int
		B string
	}

	t.Run("map with struct keys", func(t *testing.T) {
		m := map[structKey]int{
			{A: 1, B: "foo"}:  1,
			{A: 30, B: "bar"}: 2,
			{A: 7, B: "baz"}:  3,
		}

		result := keyvalue.Filter(m, func(key structKey, value int) bool {
			return key.A > 1 && value > 1
		})

		assert.Len(t, result, 2)
		assert.Equal(t, 2, result[structKey{A: 30, B: "bar"}])
		assert.Equal(t, 3, result[structKey{A: 7, B: "baz"}])
		assert.Len(t, m, 3, "source map must not be modified")
	})

	t.Run("empty map", func(t *testing.T) {
		result := keyvalue.Filter(map[string]int{}, func(string, int) bool { return true })
		assert.Empty(t, result)
	})
}
