package payout

import "errors"

var (
	// ErrBudgetViolated indicates released tokens fall outside [0, total].
	ErrBudgetViolated = errors.New("payout: released tokens outside budget")

	// ErrNegativeBudget indicates a negative total token budget.
	ErrNegativeBudget = errors.New("payout: negative total budget")

	// ErrOverflow indicates an ecostate change too large to pay out.
	ErrOverflow = errors.New("payout: ecostate change overflows")
)
