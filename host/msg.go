package host

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/contract"
)

// InitMsg is the wire form of the creation parameters.
type InitMsg struct {
	Region            string `json:"region"`
	Beneficiary       string `json:"beneficiary"`
	Oracle            string `json:"oracle"`
	Ecostate          int64  `json:"ecostate"`
	TotalTokens       int64  `json:"total_tokens"`
	PayoutStartHeight int64  `json:"payout_start_height"`
	PayoutEndHeight   int64  `json:"payout_end_height"`
}

// Canonical converts m into contract form using api.
func (m *InitMsg) Canonical(api address.API) (contract.InitMsg, error) {
	beneficiary, err := api.Canonicalize(m.Beneficiary)
	if err != nil {
		return contract.InitMsg{}, fmt.Errorf("%w: beneficiary: %w", ErrInvalidMsg, err)
	}
	oracle, err := api.Canonicalize(m.Oracle)
	if err != nil {
		return contract.InitMsg{}, fmt.Errorf("%w: oracle: %w", ErrInvalidMsg, err)
	}
	return contract.InitMsg{
		Region:            m.Region,
		Beneficiary:       beneficiary,
		Oracle:            oracle,
		Ecostate:          m.Ecostate,
		TotalTokens:       m.TotalTokens,
		PayoutStartHeight: m.PayoutStartHeight,
		PayoutEndHeight:   m.PayoutEndHeight,
	}, nil
}

// UpdateEcostateMsg is the body of the updateecostate variant.
type UpdateEcostateMsg struct {
	Ecostate int64 `json:"ecostate"`
}

// ChangeBeneficiaryMsg is the body of the changebeneficiary variant.
type ChangeBeneficiaryMsg struct {
	Beneficiary string `json:"beneficiary"`
}

// TransferOwnershipMsg is the body of the transferownership variant.
type TransferOwnershipMsg struct {
	Owner string `json:"owner"`
}

// Empty is the body of variants without fields.
type Empty struct{}

// HandleMsg is the tagged union of commands. Exactly one field must be set.
type HandleMsg struct {
	UpdateEcostate    *UpdateEcostateMsg    `json:"updateecostate,omitempty"`
	Lock              *Empty                `json:"lock,omitempty"`
	UnLock            *Empty                `json:"unlock,omitempty"`
	ChangeBeneficiary *ChangeBeneficiaryMsg `json:"changebeneficiary,omitempty"`
	TransferOwnership *TransferOwnershipMsg `json:"transferownership,omitempty"`
}

// Command converts m into a contract command using api.
func (m *HandleMsg) Command(api address.API) (contract.Command, error) {
	var cmds []contract.Command
	var addrErr error

	if m.UpdateEcostate != nil {
		cmds = append(cmds, contract.UpdateEcostate{Ecostate: m.UpdateEcostate.Ecostate})
	}
	if m.Lock != nil {
		cmds = append(cmds, contract.Lock{})
	}
	if m.UnLock != nil {
		cmds = append(cmds, contract.UnLock{})
	}
	if m.ChangeBeneficiary != nil {
		c, err := api.Canonicalize(m.ChangeBeneficiary.Beneficiary)
		if err != nil {
			addrErr = fmt.Errorf("%w: beneficiary: %w", ErrInvalidMsg, err)
		}
		cmds = append(cmds, contract.ChangeBeneficiary{Beneficiary: c})
	}
	if m.TransferOwnership != nil {
		c, err := api.Canonicalize(m.TransferOwnership.Owner)
		if err != nil {
			addrErr = fmt.Errorf("%w: owner: %w", ErrInvalidMsg, err)
		}
		cmds = append(cmds, contract.TransferOwnership{Owner: c})
	}

	if len(cmds) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one command, got %d", ErrInvalidMsg, len(cmds))
	}
	if addrErr != nil {
		return nil, addrErr
	}
	return cmds[0], nil
}

// BalanceMsg is the body of the balance query variant.
type BalanceMsg struct {
	Address string `json:"address"`
}

// QueryMsg is the tagged union of declared queries.
type QueryMsg struct {
	State   *Empty      `json:"state,omitempty"`
	Balance *BalanceMsg `json:"balance,omitempty"`
}

// Query converts m into a contract query using api.
func (m *QueryMsg) Query(api address.API) (contract.QueryMsg, error) {
	switch {
	case m.State != nil && m.Balance == nil:
		return contract.StateQuery{}, nil
	case m.Balance != nil && m.State == nil:
		c, err := api.Canonicalize(m.Balance.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: address: %w", ErrInvalidMsg, err)
		}
		return contract.BalanceQuery{Address: c}, nil
	default:
		return nil, fmt.Errorf("%w: expected exactly one query", ErrInvalidMsg)
	}
}

// DecodeInitMsg parses a JSON init message.
func DecodeInitMsg(data []byte) (*InitMsg, error) {
	var m InitMsg
	if err := decodeStrict(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeHandleMsg parses a JSON command.
func DecodeHandleMsg(data []byte) (*HandleMsg, error) {
	var m HandleMsg
	if err := decodeStrict(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeQueryMsg parses a JSON query.
func DecodeQueryMsg(data []byte) (*QueryMsg, error) {
	var m QueryMsg
	if err := decodeStrict(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMsg, err)
	}
	return nil
}
