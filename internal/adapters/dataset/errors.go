package dataset

import (
	"errors"
)

// Sentinel kinds for dataset errors.
var (
	ErrOpenDataset   = errors.New("open dataset failed")
	ErrParseDataset  = errors.New("parse dataset failed")
	ErrMissingHeader = errors.New("dataset header missing required columns")
)
