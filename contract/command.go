package contract

import "github.com/bitfsorg/ecopayout-go/address"

// Command is one of the five state transitions.
type Command interface {
	// Name identifies the command in logs, metrics and log effects.
	Name() string

	isCommand()
}

// UpdateEcostate reports a new metric value and may trigger a payout.
type UpdateEcostate struct {
	Ecostate int64
}

// Lock halts payouts.
type Lock struct{}

// UnLock resumes payouts.
type UnLock struct{}

// ChangeBeneficiary replaces the payout recipient.
type ChangeBeneficiary struct {
	Beneficiary address.Canonical
}

// TransferOwnership replaces the owner.
type TransferOwnership struct {
	Owner address.Canonical
}

func (UpdateEcostate) Name() string { return "update_ecostate" }
func (Lock) Name() string { return "lock" }
func (UnLock) Name() string { return "unlock" }
func (ChangeBeneficiary) Name() string { return "change_beneficiary" }
func (TransferOwnership) Name() string { return "transfer_ownership" }

func (UpdateEcostate) isCommand() {}
func (Lock) isCommand() {}
func (UnLock) isCommand() {}
func (ChangeBeneficiary) isCommand() {}
func (TransferOwnership) isCommand() {}
