package magicset_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ricpacca/magicset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniqueWithID(t *testing.T) {
	t.Run("custom id is kept", func(t *testing.T) {
		id := uuid.New()

		u, err := magicset.NewUniqueWithID(id)
		require.NoError(t, err)
		assert.Equal(t, id, u.ID())
	})

	t.Run("nil id is rejected", func(t *testing.T) {
		_, err := magicset.NewUniqueWithID(uuid.Nil)
		assert.ErrorIs(t, err, magicset.ErrInvalidArgument)
	})

	t.Run("must variant panics on nil id", func(t *testing.T) {
		assert.Panics(t, func() {
			magicset.MustUniqueWithID(uuid.Nil)
		})
	})
}

func TestNewUnique(t *testing.T) {
	t.Run("random ids are set", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.NotEqual(t, uuid.Nil, magicset.NewUnique().ID())
		}
	})

	t.Run("random ids are different", func(t *testing.T) {
		u1 := magicset.NewUnique()
		u2 := magicset.NewUnique()
		u3 := magicset.NewUnique()

		assert.NotEqual(t, u1.ID(), u2.ID())
		assert.NotEqual(t, u1.ID(), u3.ID())
		assert.NotEqual(t, u2.ID(), u3.ID())
	})

	t.Run("embedded identity is promoted", func(t *testing.T) {
		id := uuid.New()
		w := newWidgetWithID(id, "foo")
		assert.Equal(t, id, w.ID())
	})
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "unordered", magicset.Unordered.String())
	assert.Equal(t, "insertion-ordered", magicset.InsertionOrdered.String())
	assert.Equal(t, "Ordering(9)", magicset.Ordering(9).String())
}
