// Package payout implements the ecostate incentive curve and the budget cap
// applied to each disbursement.
package payout

import "fmt"

const (
	// Baseline is the scaled ecostate (50.00%) above which small gains earn a bonus.
	Baseline = 5000

	// Threshold is the scaled improvement (1 percentage point) at which payout
	// switches to one token per scaled unit.
	Threshold = 100

	// Denom is the token denomination of every disbursement.
	Denom = "utree"
)

// Calculate returns the tokens earned when the ecostate moves from previous
// to reported. Both values are scaled x100 (5000 = 50.00%).
//
// A regression pays nothing. An improvement of at least Threshold pays the
// raw scaled difference. A smaller improvement pays two tokens per full
// percentage point above Baseline, truncated. ErrOverflow is returned when
// the improvement does not fit in an int64.
func Calculate(previous, reported int64) (int64, error) {
	if reported < previous {
		return 0, nil
	}
	diff := reported - previous
	if diff < 0 {
		return 0, fmt.Errorf("%w: ecostate %d -> %d", ErrOverflow, previous, reported)
	}
	if diff >= Threshold {
		return diff, nil
	}

	if reported <= Baseline {
		return 0, nil
	}
	// Split before scaling so large values cannot wrap.
	above := reported - Baseline
	return above/100*2 + above%100*2/100, nil
}

// Available returns the undisbursed part of the budget.
func Available(total, released int64) int64 {
	return total - released
}

// Release caps tokens at the available budget. It returns the amount to
// transfer and the new cumulative released total. When the cap applies the
// released total is set to exactly total.
func Release(tokens, total, released int64) (amount, newReleased int64) {
	available := Available(total, released)
	if tokens > available {
		return available, total
	}
	return tokens, released + tokens
}
