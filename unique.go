package magicset

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Unique provides an immutable identifier. Embed it in element types:
//
//	type Task struct {
//		magicset.Unique
//		Title string
//	}
//
// The identifier is unexported, so types embedding Unique encode it
// themselves and restore it with NewUniqueWithID.
type Unique struct {
	id uuid.UUID
}

// NewUnique returns a Unique with a random identifier.
func NewUnique() Unique {
	return Unique{id: uuid.New()}
}

// NewUniqueWithID returns a Unique with the given identifier.
// The nil UUID is rejected with ErrInvalidArgument.
func NewUniqueWithID(id uuid.UUID) (Unique, error) {
	if id == uuid.Nil {
		return Unique{}, errors.Wrap(ErrInvalidArgument, "unique items need a non-nil id")
	}

	return Unique{id: id}, nil
}

// MustUniqueWithID is like NewUniqueWithID but panics on error.
func MustUniqueWithID(id uuid.UUID) Unique {
	u, err := NewUniqueWithID(id)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unique) ID() uuid.UUID {
	return u.id
}
