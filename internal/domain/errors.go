package domain

import "errors"

// Standard domain errors
var (
	ErrUnknownStyle    = errors.New("style must be one of: 'creative', 'precise', 'fast'")
	ErrTooManyRequests = errors.New("too many requests, retry later")
)
