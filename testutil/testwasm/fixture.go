package testwasm

import (
	"cosmossdk.io/math"
	yaml "gopkg.in/yaml.v2"
)

// YAMLTokenBalancesFixture is the structure used to unmarshal a token balances
// fixture file.
type YAMLTokenBalancesFixture struct {
	TokenBalances []YAMLContractBalances `yaml:"token_balances"`
}

// YAMLContractBalances is the balances of one token contract in a fixture file.
type YAMLContractBalances struct {
	Contract string              `yaml:"contract"`
	Holders  []YAMLHolderBalance `yaml:"holders"`
}

// YAMLHolderBalance is a single holder balance in a fixture file. Balances are
// decimal strings since they may exceed 64 bits.
type YAMLHolderBalance struct {
	Address string `yaml:"address"`
	Balance string `yaml:"balance"`
}

// ParseTokenBalancesFixture parses a token balances fixture file. The order of
// the file is preserved, so repeated entries resolve the same way they do in
// NewTokenLedger.
func ParseTokenBalancesFixture(fixtureContent []byte) ([]ContractBalances, error) {
	var yamlFixture YAMLTokenBalancesFixture

	if len(fixtureContent) == 0 {
		return nil, ErrWasmFixtureEmpty
	}

	if err := yaml.UnmarshalStrict(fixtureContent, &yamlFixture); err != nil {
		return nil, ErrWasmFixtureUnmarshalYAML.Wrap(err.Error())
	}

	balances := make([]ContractBalances, 0, len(yamlFixture.TokenBalances))
	for i, yamlContract := range yamlFixture.TokenBalances {
		if yamlContract.Contract == "" {
			return nil, ErrWasmFixtureInvalidEntry.Wrapf("token_balances[%d]: contract is required", i)
		}

		contractBalances := ContractBalances{
			Contract: yamlContract.Contract,
			Holders:  make([]HolderBalance, 0, len(yamlContract.Holders)),
		}
		for j, yamlHolder := range yamlContract.Holders {
			if yamlHolder.Address == "" {
				return nil, ErrWasmFixtureInvalidEntry.Wrapf(
					"token_balances[%d].holders[%d]: address is required", i, j,
				)
			}

			balance, err := math.ParseUint(yamlHolder.Balance)
			if err != nil {
				return nil, ErrWasmFixtureInvalidBalance.Wrapf(
					"contract %s, holder %s: %s", yamlContract.Contract, yamlHolder.Address, err,
				)
			}

			contractBalances.Holders = append(contractBalances.Holders, HolderBalance{
				Holder:  yamlHolder.Address,
				Balance: balance,
			})
		}
		balances = append(balances, contractBalances)
	}

	return balances, nil
}
