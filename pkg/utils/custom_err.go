package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPlotNotFound       = errors.New("plot not found")
	ErrValidation         = errors.New("validation failed")
	ErrUpstream           = errors.New("upstream unavailable")
	ErrMalformedUpstream  = errors.New("malformed upstream response")
	ErrDatabaseError      = errors.New("database error")
)
