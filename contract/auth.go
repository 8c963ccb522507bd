package contract

import (
	"fmt"

	"github.com/bitfsorg/ecopayout-go/address"
)

// Role is a privileged position recorded in State.
type Role uint8

const (
	RoleOracle Role = iota + 1
	RoleOwner
	RoleBeneficiary
)

func (r Role) String() string {
	switch r {
	case RoleOracle:
		return "oracle"
	case RoleOwner:
		return "owner"
	case RoleBeneficiary:
		return "beneficiary"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Holder returns the address currently holding role.
func (s *State) Holder(role Role) (address.Canonical, bool) {
	switch role {
	case RoleOracle:
		return s.Oracle, true
	case RoleOwner:
		return s.Owner, true
	case RoleBeneficiary:
		return s.Beneficiary, true
	default:
		return address.Canonical{}, false
	}
}

// RequiredRole returns the role whose holder must sign cmd.
//
// ChangeBeneficiary is authorized by the current beneficiary, not the owner.
func RequiredRole(cmd Command) (Role, error) {
	switch cmd.(type) {
	case UpdateEcostate:
		return RoleOracle, nil
	case Lock, UnLock, TransferOwnership:
		return RoleOwner, nil
	case ChangeBeneficiary:
		return RoleBeneficiary, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

// Authorize returns ErrUnauthorized unless signer holds the role cmd requires.
func Authorize(state *State, cmd Command, signer address.Canonical) error {
	role, err := RequiredRole(cmd)
	if err != nil {
		return err
	}
	holder, ok := state.Holder(role)
	if !ok || holder != signer {
		return fmt.Errorf("%w: %s requires %s", ErrUnauthorized, cmd.Name(), role)
	}
	return nil
}
