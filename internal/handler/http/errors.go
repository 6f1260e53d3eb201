package http

import "errors"

// ErrMalformedBody is returned when a request body is not a declaration.
var ErrMalformedBody = errors.New("malformed request body")

// ErrBodyTooLarge is returned when a request body exceeds the accepted size.
var ErrBodyTooLarge = errors.New("request body too large")
