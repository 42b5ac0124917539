package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before any state is touched.
var ErrValidation = errors.New("validation failed")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
