package contract

import (
	"strconv"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/payout"
)

// Effect is an outbound instruction produced by a successful transition.
// Effects are applied by the host only after the new state is persisted.
type Effect interface {
	isEffect()
}

// Coin is an amount of one denomination. Amount is a base-10 integer string.
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// Transfer moves tokens from the contract to a recipient.
type Transfer struct {
	From   address.Canonical
	To     address.Canonical
	Amount []Coin
}

// Log is a structured log entry: an action plus one address attribute.
type Log struct {
	Action  string
	Key     string
	Address address.Canonical
}

func (Transfer) isEffect() {}
func (Log) isEffect() {}

// Log keys.
const (
	KeyAccount = "account"
	KeyTo      = "to"
)

// Log actions.
const (
	ActionPayout            = "payout"
	ActionLock              = "lock"
	ActionUnlock            = "unlock"
	ActionChangeBeneficiary = "change_beneficiary"
	ActionChangeOwner       = "change_owner"
)

// payoutEffects builds the transfer to the beneficiary and its log entry.
func payoutEffects(from, to address.Canonical, amount int64) []Effect {
	return []Effect{
		Transfer{
			From:   from,
			To:     to,
			Amount: []Coin{{Amount: strconv.FormatInt(amount, 10), Denom: payout.Denom}},
		},
		Log{Action: ActionPayout, Key: KeyTo, Address: to},
	}
}

// accountLog builds the log entry recorded for administrative actions.
func accountLog(action string, signer address.Canonical) []Effect {
	return []Effect{Log{Action: action, Key: KeyAccount, Address: signer}}
}
