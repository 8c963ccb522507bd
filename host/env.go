// Package host is the execution boundary around the payout contract. It
// decodes inbound messages, loads and saves state, and renders the effects
// of each transition into a wire Response.
package host

import "github.com/bitfsorg/ecopayout-go/address"

// Env is the invocation context supplied by the execution environment.
type Env struct {
	Signer   address.Canonical // Caller identity
	Contract address.Canonical // Address of the contract instance
	Height   int64             // Current block height
}
