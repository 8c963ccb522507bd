package address

import "errors"

var (
	// ErrInvalidAddress indicates a human-readable address could not be decoded.
	ErrInvalidAddress = errors.New("address: invalid address")

	// ErrNetworkMismatch indicates the address belongs to a different network.
	ErrNetworkMismatch = errors.New("address: network mismatch")

	// ErrInvalidHash indicates a public key hash is not 20 bytes.
	ErrInvalidHash = errors.New("address: invalid public key hash")
)
