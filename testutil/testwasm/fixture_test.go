package testwasm_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/wasmquerier/pkg/basset"
	"github.com/pokt-network/wasmquerier/testutil/testwasm"
)

func TestParseTokenBalancesFixture(t *testing.T) {
	tests := []struct {
		desc string

		inputFixture string

		expectedErr      error
		expectedBalances []testwasm.ContractBalances
	}{
		{
			desc: "valid: multiple contracts",

			inputFixture: `
token_balances:
  - contract: T1
    holders:
      - address: alice
        balance: "100"
      - address: bob
        balance: "50"
  - contract: T2
    holders:
      - address: carol
        balance: "340282366920938463463374607431768211455"
`,

			expectedBalances: []testwasm.ContractBalances{
				{
					Contract: "T1",
					Holders: []testwasm.HolderBalance{
						{Holder: "alice", Balance: math.NewUint(100)},
						{Holder: "bob", Balance: math.NewUint(50)},
					},
				},
				{
					Contract: "T2",
					Holders: []testwasm.HolderBalance{
						{Holder: "carol", Balance: math.NewUintFromString("340282366920938463463374607431768211455")},
					},
				},
			},
		},
		{
			desc: "valid: contract without holders",

			inputFixture: `
token_balances:
  - contract: T1
`,

			expectedBalances: []testwasm.ContractBalances{
				{Contract: "T1", Holders: []testwasm.HolderBalance{}},
			},
		},
		{
			desc: "invalid: empty fixture",

			inputFixture: ``,

			expectedErr: testwasm.ErrWasmFixtureEmpty,
		},
		{
			desc: "invalid: malformed yaml",

			inputFixture: `
token_balances: [
  {contract: T1
`,

			expectedErr: testwasm.ErrWasmFixtureUnmarshalYAML,
		},
		{
			desc: "invalid: unknown field",

			inputFixture: `
token_balances:
  - contract: T1
    owner: governance
`,

			expectedErr: testwasm.ErrWasmFixtureUnmarshalYAML,
		},
		{
			desc: "invalid: missing contract",

			inputFixture: `
token_balances:
  - holders:
      - address: alice
        balance: "100"
`,

			expectedErr: testwasm.ErrWasmFixtureInvalidEntry,
		},
		{
			desc: "invalid: missing holder address",

			inputFixture: `
token_balances:
  - contract: T1
    holders:
      - balance: "100"
`,

			expectedErr: testwasm.ErrWasmFixtureInvalidEntry,
		},
		{
			desc: "invalid: negative balance",

			inputFixture: `
token_balances:
  - contract: T1
    holders:
      - address: alice
        balance: "-1"
`,

			expectedErr: testwasm.ErrWasmFixtureInvalidBalance,
		},
		{
			desc: "invalid: non integer balance",

			inputFixture: `
token_balances:
  - contract: T1
    holders:
      - address: alice
        balance: "1.5"
`,

			expectedErr: testwasm.ErrWasmFixtureInvalidBalance,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			balances, err := testwasm.ParseTokenBalancesFixture([]byte(test.inputFixture))
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				require.Nil(t, balances)
				return
			}

			require.NoError(t, err)
			require.Len(t, balances, len(test.expectedBalances))
			for i, expected := range test.expectedBalances {
				require.Equal(t, expected.Contract, balances[i].Contract)
				require.Len(t, balances[i].Holders, len(expected.Holders))
				for j, expectedHolder := range expected.Holders {
					require.Equal(t, expectedHolder.Holder, balances[i].Holders[j].Holder)
					require.True(t, expectedHolder.Balance.Equal(balances[i].Holders[j].Balance))
				}
			}
		})
	}
}

func TestParseTokenBalancesFixture_SeedsQuerier(t *testing.T) {
	balances, err := testwasm.ParseTokenBalancesFixture([]byte(`
token_balances:
  - contract: T1
    holders:
      - address: alice
        balance: "100"
      - address: alice
        balance: "60"
      - address: bob
        balance: "50"
`))
	require.NoError(t, err)

	querier := newTestQuerier(t, testwasm.WithInitialTokenBalances(balances...))
	bz, err := querier.RawQuery(rawQueryRequest(t, "T1", basset.TokenInfoKey()))
	require.NoError(t, err)

	var tokenInfo basset.TokenInfo
	require.NoError(t, basset.DecodeStorageValue(bz, &tokenInfo))
	require.Equal(t, "110", tokenInfo.TotalSupply.String())
}
