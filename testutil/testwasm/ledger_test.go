package testwasm_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/wasmquerier/testutil/testwasm"
)

func TestTokenLedger(t *testing.T) {
	ledger := testwasm.NewTokenLedger(
		testwasm.ContractBalances{
			Contract: "T2",
			Holders:  []testwasm.HolderBalance{{Holder: "carol", Balance: math.NewUint(1)}},
		},
		testwasm.ContractBalances{
			Contract: "T1",
			Holders: []testwasm.HolderBalance{
				{Holder: "alice", Balance: math.NewUint(100)},
				{Holder: "bob", Balance: math.NewUint(50)},
				{Holder: "unset"},
			},
		},
	)

	require.Equal(t, []string{"T1", "T2"}, ledger.Contracts())

	tests := []struct {
		desc            string
		contract        string
		holder          string
		expectedBalance math.Uint
		expectedFound   bool
	}{
		{desc: "configured holder", contract: "T1", holder: "alice", expectedBalance: math.NewUint(100), expectedFound: true},
		{desc: "holder of another contract", contract: "T2", holder: "alice", expectedBalance: math.ZeroUint()},
		{desc: "holder without balance", contract: "T1", holder: "unset", expectedBalance: math.ZeroUint(), expectedFound: true},
		{desc: "unknown contract", contract: "T3", holder: "alice", expectedBalance: math.ZeroUint()},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			balance, found := ledger.Balance(test.contract, test.holder)
			require.Equal(t, test.expectedFound, found)
			require.True(t, test.expectedBalance.Equal(balance))
		})
	}

	totalSupply, found, err := ledger.TotalSupply("T1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "150", totalSupply.String())

	_, found, err = ledger.TotalSupply("T3")
	require.NoError(t, err)
	require.False(t, found)
}

func TestTokenLedger_RepeatedContractKeepsLastHolders(t *testing.T) {
	ledger := testwasm.NewTokenLedger(
		testwasm.ContractBalances{
			Contract: "T1",
			Holders:  []testwasm.HolderBalance{{Holder: "alice", Balance: math.NewUint(100)}},
		},
		testwasm.ContractBalances{
			Contract: "T1",
			Holders:  []testwasm.HolderBalance{{Holder: "bob", Balance: math.NewUint(2)}},
		},
	)

	_, found := ledger.Balance("T1", "alice")
	require.False(t, found)

	totalSupply, _, err := ledger.TotalSupply("T1")
	require.NoError(t, err)
	require.Equal(t, "2", totalSupply.String())
}
