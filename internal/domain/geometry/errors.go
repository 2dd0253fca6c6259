package geometry

import (
	"errors"
)

// Sentinel kinds for geometry errors.
var (
	ErrInvalidRecord = errors.New("invalid shot record")
)
