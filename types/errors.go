package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex   = errors.New("invalid index")
	ErrEmptyStructure = errors.New("empty structure")
)

// readIndexError reports an index outside [0, length).
func readIndexError(index, length int) error {
	return fmt.Errorf("%w: %d out of range [0, %d)", ErrInvalidIndex, index, length)
}

// insertIndexError reports an index outside [0, length].
func insertIndexError(index, length int) error {
	return fmt.Errorf("%w: %d out of range [0, %d]", ErrInvalidIndex, index, length)
}
