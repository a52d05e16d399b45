package magicset

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidData     = errors.New("invalid data")
)
