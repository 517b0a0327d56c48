package entity

import "errors"

var (
	ErrMissingInput  = errors.New("missing input")
	ErrInvalidType   = errors.New("invalid type")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

const (
	ErrMsgInternal     = "Internal server error"
	ErrMsgBadRequest   = "Invalid request"
	ErrMsgUnauthorized = "Authentication required"
	ErrMsgForbidden    = "Access denied"
	ErrMsgNotFound     = "Not found"
	ErrMsgBadLogin     = "Incorrect email or password"
)
