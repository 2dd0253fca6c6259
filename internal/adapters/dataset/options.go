// Package dataset loads the historical shot dataset from a CSV file.
package dataset

import "github.com/YellowCow9/nba-sim/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithMaxRows caps the number of rows loaded; 0 or negative means unlimited.
func WithMaxRows(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxRows = n
		}
	}
}

// WithLogger sets the logger used for load progress and row warnings.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}
