package repository

import "errors"

// Sentinel errors shared by all storage implementations. Services match on
// these with errors.Is and translate them at the handler boundary.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
