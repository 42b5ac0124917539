package service

import "errors"

var (
	// ErrNoSession is returned when an operation needs a logged-in identity.
	ErrNoSession = errors.New("no active session")

	// ErrForbidden is returned when the session lacks every required permission.
	ErrForbidden = errors.New("insufficient permission")
)
