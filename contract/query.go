package contract

import "github.com/bitfsorg/ecopayout-go/address"

// QueryMsg is a declared read-only request. No variant is served.
type QueryMsg interface {
	isQuery()
}

// StateQuery asks for the configuration record.
type StateQuery struct{}

// BalanceQuery asks for the balance of an address.
type BalanceQuery struct {
	Address address.Canonical
}

func (StateQuery) isQuery() {}
func (BalanceQuery) isQuery() {}

// Query answers read-only requests. Every request fails with
// ErrNotImplemented; no state is exposed.
func Query(QueryMsg) ([]byte, error) {
	return nil, ErrNotImplemented
}
