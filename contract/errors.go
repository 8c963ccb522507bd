package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the signer does not hold the role the command requires.
	ErrUnauthorized = errors.New("contract: unauthorized")

	// ErrContract indicates a business rule rejected the invocation.
	ErrContract = errors.New("contract: contract error")

	// ErrNotFound indicates the requested item does not exist.
	ErrNotFound = errors.New("contract: not found")

	// ErrNotImplemented is returned for every query.
	ErrNotImplemented = fmt.Errorf("%w: not implemented", ErrNotFound)

	// ErrUnknownCommand indicates a command type the dispatcher does not route.
	ErrUnknownCommand = errors.New("contract: unknown command")
)

// Business rule violations. Each wraps ErrContract.
var (
	ErrExpired         = contractErr("creating expired contract")
	ErrNegativeTotal   = contractErr("total tokens must not be negative")
	ErrLocked          = contractErr("contract is locked. no payout possible")
	ErrNoFunds         = contractErr("No more funds available")
	ErrNoImprovement   = contractErr("Not enough improvement for payout")
	ErrAlreadyLocked   = contractErr("contract already locked")
	ErrAlreadyUnlocked = contractErr("contract already unlocked")
	ErrStorage         = contractErr("couldn't save updated state")
	ErrOutOfRange      = contractErr("ecostate change out of range")
)

func contractErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrContract, msg)
}
