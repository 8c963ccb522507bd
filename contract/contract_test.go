package contract

import (
	"github.com/bitfsorg/ecopayout-go/address"
)

func makeAddr(seed byte) address.Canonical {
	var addr address.Canonical
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

var (
	ownerAddr       = makeAddr(0x01)
	oracleAddr      = makeAddr(0x02)
	beneficiaryAddr = makeAddr(0x03)
	contractAddr    = makeAddr(0x04)
	strangerAddr    = makeAddr(0x05)
)

// testState returns the state used by the worked examples: 1000 tokens,
// nothing released, ecostate 40.00%.
func testState() State {
	return State{
		Region:            "amazonas",
		Beneficiary:       beneficiaryAddr,
		Owner:             ownerAddr,
		Oracle:            oracleAddr,
		Ecostate:          4000,
		TotalTokens:       1000,
		ReleasedTokens:    0,
		PayoutStartHeight: 10,
		PayoutEndHeight:   1000,
	}
}

func infoFor(signer address.Canonical) Info {
	return Info{Signer: signer, Contract: contractAddr}
}
