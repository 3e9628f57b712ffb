package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("safe storage unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
