package payout

import "fmt"

// ValidateBudget checks that 0 <= released <= total.
func ValidateBudget(total, released int64) error {
	if total < 0 {
		return fmt.Errorf("%w: total=%d", ErrNegativeBudget, total)
	}
	if released < 0 || released > total {
		return fmt.Errorf("%w: released=%d total=%d", ErrBudgetViolated, released, total)
	}
	return nil
}
