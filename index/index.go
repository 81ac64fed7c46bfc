package index

import (
	"errors"
	"strconv"
)

var ErrInvalidIndex = errors.New("index must be a positive integer")

// Index refers to a position in a displayed list. It is stored zero-based,
// users see it one-based.
type Index struct {
	zeroBased int
}

func FromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, ErrInvalidIndex
	}

	return Index{zeroBased: zeroBased}, nil
}

func FromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, ErrInvalidIndex
	}

	return Index{zeroBased: oneBased - 1}, nil
}

// Parse converts a user supplied one-based string e.g. "3" into an Index
func Parse(oneBased string) (Index, error) {
	value, err := strconv.Atoi(oneBased)
	if err != nil {
		return Index{}, ErrInvalidIndex
	}

	return FromOneBased(value)
}

func (i Index) ZeroBased() int {
	return i.zeroBased
}

func (i Index) OneBased() int {
	return i.zeroBased + 1
}

func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}
