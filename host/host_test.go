package host

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitfsorg/ecopayout-go/address"
)

var testAPI = address.BSV{Mainnet: false}

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

func human(t *testing.T, c address.Canonical) string {
	t.Helper()
	s, err := testAPI.Humanize(c)
	require.NoError(t, err)
	return s
}

func envFor(signer address.Canonical, height int64) Env {
	return Env{Signer: signer, Contract: contractAddr, Height: height}
}

func testInitMsg(t *testing.T) *InitMsg {
	return &InitMsg{
		Region:            "amazonas",
		Beneficiary:       human(t, beneficiaryAddr),
		Oracle:            human(t, oracleAddr),
		Ecostate:          4000,
		TotalTokens:       1000,
		PayoutStartHeight: 10,
		PayoutEndHeight:   1000,
	}
}
