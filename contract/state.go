package contract

import (
	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/payout"
)

// State is the single persisted configuration record of a payout contract.
type State struct {
	Region      string            // Descriptive only; never changes after Init
	Beneficiary address.Canonical // Receives payouts
	Owner       address.Canonical // May lock, unlock and transfer ownership
	Oracle      address.Canonical // Reports ecostate updates
	Ecostate    int64             // Last accepted metric, scaled x100

	TotalTokens    int64 // Fixed budget
	ReleasedTokens int64 // Disbursed so far

	// PayoutStartHeight is stored but not consulted by any transition.
	PayoutStartHeight int64
	PayoutEndHeight   int64

	IsLocked bool
}

// InitMsg carries the creation parameters with addresses already canonical.
type InitMsg struct {
	Region            string
	Beneficiary       address.Canonical
	Oracle            address.Canonical
	Ecostate          int64
	TotalTokens       int64
	PayoutStartHeight int64
	PayoutEndHeight   int64
}

// Init builds the initial state. The signer becomes the owner. Creation fails
// when height is already past msg.PayoutEndHeight.
func Init(msg InitMsg, signer address.Canonical, height int64) (State, error) {
	if height > msg.PayoutEndHeight {
		return State{}, ErrExpired
	}
	if msg.TotalTokens < 0 {
		return State{}, ErrNegativeTotal
	}
	return State{
		Region:            msg.Region,
		Beneficiary:       msg.Beneficiary,
		Owner:             signer,
		Oracle:            msg.Oracle,
		Ecostate:          msg.Ecostate,
		TotalTokens:       msg.TotalTokens,
		ReleasedTokens:    0,
		PayoutStartHeight: msg.PayoutStartHeight,
		PayoutEndHeight:   msg.PayoutEndHeight,
		IsLocked:          false,
	}, nil
}

// Available returns the remaining disbursable budget.
func (s *State) Available() int64 {
	return payout.Available(s.TotalTokens, s.ReleasedTokens)
}

// Validate checks the budget invariant.
func (s *State) Validate() error {
	return payout.ValidateBudget(s.TotalTokens, s.ReleasedTokens)
}
