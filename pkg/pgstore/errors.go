package pgstore

import "errors"

var (
	ErrFailedToOpenConnection  = errors.New("failed to open db connection")
	ErrFailedToParseConfig     = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)
