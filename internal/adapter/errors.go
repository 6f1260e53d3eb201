package adapter

import "errors"

var (
	ErrInvalidDeclaration  = errors.New("declaration rejected by server")
	ErrNotFound            = errors.New("not found on server")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)
