package contract

import (
	"fmt"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/payout"
)

// Info describes the invocation context supplied by the host.
type Info struct {
	Signer   address.Canonical // Caller identity
	Contract address.Canonical // The contract's own address, source of transfers
}

// Handle applies cmd to state. It is pure: state is taken by value and the
// caller persists the returned state before acting on the effects. On error
// the returned state is the zero value and must be discarded.
func Handle(state State, info Info, cmd Command) (State, []Effect, error) {
	if err := Authorize(&state, cmd, info.Signer); err != nil {
		return State{}, nil, err
	}

	switch c := cmd.(type) {
	case UpdateEcostate:
		return updateEcostate(state, info, c.Ecostate)
	case Lock:
		if state.IsLocked {
			return State{}, nil, ErrAlreadyLocked
		}
		state.IsLocked = true
		return state, accountLog(ActionLock, info.Signer), nil
	case UnLock:
		if !state.IsLocked {
			return State{}, nil, ErrAlreadyUnlocked
		}
		state.IsLocked = false
		return state, accountLog(ActionUnlock, info.Signer), nil
	case ChangeBeneficiary:
		state.Beneficiary = c.Beneficiary
		return state, accountLog(ActionChangeBeneficiary, info.Signer), nil
	case TransferOwnership:
		state.Owner = c.Owner
		return state, accountLog(ActionChangeOwner, info.Signer), nil
	default:
		return State{}, nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func updateEcostate(state State, info Info, reported int64) (State, []Effect, error) {
	if state.IsLocked {
		return State{}, nil, ErrLocked
	}
	if state.Available() <= 0 {
		return State{}, nil, ErrNoFunds
	}

	tokens, err := payout.Calculate(state.Ecostate, reported)
	if err != nil {
		return State{}, nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	if tokens == 0 {
		return State{}, nil, ErrNoImprovement
	}

	var amount int64
	amount, state.ReleasedTokens = payout.Release(tokens, state.TotalTokens, state.ReleasedTokens)
	state.Ecostate = reported

	return state, payoutEffects(info.Contract, state.Beneficiary, amount), nil
}
