package client

import "errors"

// ErrQueryNeedsRemote is returned when a snapshot lookup is configured
// without a remote resolver server.
var ErrQueryNeedsRemote = errors.New("snapshot lookup needs a remote resolver server")
