package testwasm

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ BaseQuerier    = (*BaseSimulator)(nil)
	_ StakingUpdater = (*BaseSimulator)(nil)
)

// BaseSimulator is a generic chain query simulator. It answers bank balance
// and staking queries from in-memory state and rejects everything else the
// way a chain without the requested contract or module would.
type BaseSimulator struct {
	balances map[string]sdk.Coins
	staking  stakingState
}

// NewBaseSimulator returns a simulator holding the given bank balances, keyed
// by human address.
func NewBaseSimulator(balances map[string]sdk.Coins) *BaseSimulator {
	simulator := &BaseSimulator{
		balances: make(map[string]sdk.Coins, len(balances)),
	}
	for addr, coins := range balances {
		simulator.balances[addr] = coins
	}
	return simulator
}

// UpdateBalance replaces the bank balance of addr.
func (s *BaseSimulator) UpdateBalance(addr string, coins sdk.Coins) {
	s.balances[addr] = coins
}

// UpdateStaking replaces the whole staking state.
func (s *BaseSimulator) UpdateStaking(denom string, validators []Validator, delegations []FullDelegation) {
	s.staking = stakingState{
		denom:       denom,
		validators:  validators,
		delegations: delegations,
	}
}

// HandleQuery implements BaseQuerier.
func (s *BaseSimulator) HandleQuery(request wasmvmtypes.QueryRequest) ([]byte, error) {
	var (
		response any
		err      error
	)

	switch {
	case request.Bank != nil:
		response, err = s.handleBank(request.Bank)
	case request.Staking != nil:
		response, err = s.staking.handle(request.Staking)
	case request.Wasm != nil:
		return nil, s.handleWasm(request.Wasm)
	case request.Custom != nil:
		return nil, unsupportedRequest("custom")
	default:
		return nil, unsupportedRequest("unknown")
	}
	if err != nil {
		return nil, err
	}

	bz, err := json.Marshal(response)
	if err != nil {
		return nil, newQueryError(ErrWasmQueryEncoding.Wrap(err.Error()), nil)
	}
	return bz, nil
}

type allBalancesResponse struct {
	Amount []wasmvmtypes.Coin `json:"amount"`
}

func (s *BaseSimulator) handleBank(request *wasmvmtypes.BankQuery) (any, error) {
	switch {
	case request.Balance != nil:
		coins := s.balances[request.Balance.Address]
		return wasmvmtypes.BalanceResponse{
			Amount: wasmvmtypes.Coin{
				Denom:  request.Balance.Denom,
				Amount: amountOf(coins, request.Balance.Denom),
			},
		}, nil
	case request.AllBalances != nil:
		return allBalancesResponse{
			Amount: toWasmCoins(s.balances[request.AllBalances.Address]),
		}, nil
	}
	return nil, unsupportedRequest("bank")
}

// handleWasm rejects every contract query: the simulator knows no contracts.
func (s *BaseSimulator) handleWasm(request *wasmvmtypes.WasmQuery) error {
	var contractAddr string
	switch {
	case request.Smart != nil:
		contractAddr = request.Smart.ContractAddr
	case request.Raw != nil:
		contractAddr = request.Raw.ContractAddr
	case request.ContractInfo != nil:
		contractAddr = request.ContractInfo.ContractAddr
	default:
		return unsupportedRequest("wasm")
	}

	queryErr := newQueryError(ErrWasmQueryNoSuchContract.Wrap(contractAddr), nil)
	queryErr.ContractAddr = contractAddr
	return queryErr
}

func unsupportedRequest(kind string) error {
	queryErr := newQueryError(ErrWasmQueryUnsupported.Wrapf("kind %s", kind), nil)
	queryErr.Kind = kind
	return queryErr
}

// amountOf returns the amount of denom in coins, or "0". Unlike
// sdk.Coins.AmountOf it does not panic on denominations the SDK considers invalid.
func amountOf(coins sdk.Coins, denom string) string {
	for _, coin := range coins {
		if coin.Denom == denom {
			return coin.Amount.String()
		}
	}
	return "0"
}

func toWasmCoin(coin sdk.Coin) wasmvmtypes.Coin {
	if coin.Amount.IsNil() {
		return wasmvmtypes.Coin{Denom: coin.Denom, Amount: "0"}
	}
	return wasmvmtypes.Coin{Denom: coin.Denom, Amount: coin.Amount.String()}
}

func toWasmCoins(coins sdk.Coins) []wasmvmtypes.Coin {
	wasmCoins := make([]wasmvmtypes.Coin, 0, len(coins))
	for _, coin := range coins {
		wasmCoins = append(wasmCoins, toWasmCoin(coin))
	}
	return wasmCoins
}
