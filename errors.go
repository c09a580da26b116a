package squares

import (
	"errors"
)

// ErrInvalidRange is returned when a bounded accessor is asked for an
// empty or inverted range (high <= low).
var ErrInvalidRange = errors.New("invalid range: high must be greater than low")
