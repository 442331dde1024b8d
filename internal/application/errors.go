package application

import "errors"

// Error taxonomy shared by all services. Handlers translate these into
// HTTP statuses: InvalidArgument→400, NotFound→404, Forbidden→403.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfSubscription   = errors.New("cannot subscribe to yourself")
	ErrDuplicate          = errors.New("already exists")
)
