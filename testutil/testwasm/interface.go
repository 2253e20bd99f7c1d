//go:generate go run go.uber.org/mock/mockgen -destination ./mocks/base_querier_mock.go -package mocks . BaseQuerier

package testwasm

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

// BaseQuerier answers every query which WasmMockQuerier does not specialize,
// e.g. bank balances, staking and smart contract queries.
type BaseQuerier interface {
	HandleQuery(request wasmvmtypes.QueryRequest) ([]byte, error)
}

// StakingUpdater is implemented by base queriers which can be seeded with
// staking state.
type StakingUpdater interface {
	UpdateStaking(denom string, validators []Validator, delegations []FullDelegation)
}
