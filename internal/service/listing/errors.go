package listing

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid listing event")
	ErrUndefinedEvent = errors.New("undefined listing event")
	ErrDuplicateEvent = errors.New("listing event already processed")
)
