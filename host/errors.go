package host

import "errors"

var (
	// ErrAlreadyInitialized indicates Init was called on an existing contract.
	ErrAlreadyInitialized = errors.New("host: contract already initialized")

	// ErrInvalidMsg indicates an inbound message could not be decoded.
	ErrInvalidMsg = errors.New("host: invalid message")

	// ErrRender indicates effects could not be rendered into a response.
	ErrRender = errors.New("host: render response")
)
