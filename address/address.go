// Package address converts between human-readable addresses and the canonical
// 20-byte form the contract compares and persists.
package address

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bsv-blockchain/go-sdk/script"
)

// Size is the length of a canonical address (a P2PKH public key hash).
const Size = 20

// Canonical is the normalized address form stored in contract state.
type Canonical [Size]byte

// IsZero reports whether c is the all-zero address.
func (c Canonical) IsZero() bool { return c == Canonical{} }

// String returns the hex encoding of the public key hash.
func (c Canonical) String() string { return hex.EncodeToString(c[:]) }

// FromHash copies a 20-byte public key hash into a Canonical.
func FromHash(pkh []byte) (Canonical, error) {
	var c Canonical
	if len(pkh) != Size {
		return c, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHash, Size, len(pkh))
	}
	copy(c[:], pkh)
	return c, nil
}

// API converts addresses at the contract boundary.
type API interface {
	// Canonicalize decodes a human-readable address.
	Canonicalize(human string) (Canonical, error)

	// Humanize encodes a canonical address for display and outbound messages.
	Humanize(c Canonical) (string, error)
}

// BSV implements API with base58check P2PKH addresses.
type BSV struct {
	Mainnet bool
}

// Compile-time interface check.
var _ API = BSV{}

// ForNetwork returns the BSV address API for a configured network name.
func ForNetwork(network string) BSV {
	return BSV{Mainnet: network == "mainnet"}
}

// Canonicalize decodes human into its public key hash.
func (b BSV) Canonicalize(human string) (Canonical, error) {
	human = strings.TrimSpace(human)
	if human == "" {
		return Canonical{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	addr, err := script.NewAddressFromString(human)
	if err != nil {
		return Canonical{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	// Re-encode for this network; a different string means a different version byte.
	expect, err := script.NewAddressFromPublicKeyHash([]byte(addr.PublicKeyHash), b.Mainnet)
	if err != nil {
		return Canonical{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if expect.AddressString != human {
		return Canonical{}, fmt.Errorf("%w: %s", ErrNetworkMismatch, human)
	}

	return FromHash([]byte(addr.PublicKeyHash))
}

// Humanize encodes c as a P2PKH address string.
func (b BSV) Humanize(c Canonical) (string, error) {
	addr, err := script.NewAddressFromPublicKeyHash(c[:], b.Mainnet)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return addr.AddressString, nil
}
