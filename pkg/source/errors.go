package source

import "errors"

var (
	ErrEmptyName        = errors.New("source: name cannot be empty")
	ErrInvalidBatchSize = errors.New("source: batch size must be positive")
)
