package db

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("db: failed to parse database configuration")
	ErrFailedToOpenDBConnection = errors.New("db: failed to open database connection")
	ErrEmptyQuery               = errors.New("db: source query cannot be empty")
	ErrEmptyName                = errors.New("db: source name cannot be empty")
	ErrQueryFailed              = errors.New("db: source query failed")
)
