package testwasm

import (
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Validator is a staking validator as reported to contracts.
type Validator struct {
	Address       string         `json:"address"`
	Commission    math.LegacyDec `json:"commission"`
	MaxCommission math.LegacyDec `json:"max_commission"`
	MaxChangeRate math.LegacyDec `json:"max_change_rate"`
}

// FullDelegation is a delegation together with its redelegation and reward state.
type FullDelegation struct {
	Delegator          string
	Validator          string
	Amount             sdk.Coin
	CanRedelegate      sdk.Coin
	AccumulatedRewards sdk.Coins
}

type bondedDenomResponse struct {
	Denom string `json:"denom"`
}

type allValidatorsResponse struct {
	Validators []Validator `json:"validators"`
}

type validatorResponse struct {
	Validator *Validator `json:"validator"`
}

type delegationEntry struct {
	Delegator string           `json:"delegator"`
	Validator string           `json:"validator"`
	Amount    wasmvmtypes.Coin `json:"amount"`
}

type allDelegationsResponse struct {
	Delegations []delegationEntry `json:"delegations"`
}

type fullDelegationEntry struct {
	Delegator          string             `json:"delegator"`
	Validator          string             `json:"validator"`
	Amount             wasmvmtypes.Coin   `json:"amount"`
	CanRedelegate      wasmvmtypes.Coin   `json:"can_redelegate"`
	AccumulatedRewards []wasmvmtypes.Coin `json:"accumulated_rewards"`
}

type delegationResponse struct {
	Delegation *fullDelegationEntry `json:"delegation"`
}

// stakingState is the staking view of a BaseSimulator.
type stakingState struct {
	denom       string
	validators  []Validator
	delegations []FullDelegation
}

func (s stakingState) handle(request *wasmvmtypes.StakingQuery) (any, error) {
	switch {
	case request.BondedDenom != nil:
		return bondedDenomResponse{Denom: s.denom}, nil

	case request.AllValidators != nil:
		validators := s.validators
		if validators == nil {
			validators = []Validator{}
		}
		return allValidatorsResponse{Validators: validators}, nil

	case request.Validator != nil:
		for _, validator := range s.validators {
			if validator.Address == request.Validator.Address {
				return validatorResponse{Validator: &validator}, nil
			}
		}
		return validatorResponse{}, nil

	case request.AllDelegations != nil:
		delegations := make([]delegationEntry, 0)
		for _, delegation := range s.delegations {
			if delegation.Delegator != request.AllDelegations.Delegator {
				continue
			}
			delegations = append(delegations, delegationEntry{
				Delegator: delegation.Delegator,
				Validator: delegation.Validator,
				Amount:    toWasmCoin(delegation.Amount),
			})
		}
		return allDelegationsResponse{Delegations: delegations}, nil

	case request.Delegation != nil:
		for _, delegation := range s.delegations {
			if delegation.Delegator != request.Delegation.Delegator ||
				delegation.Validator != request.Delegation.Validator {
				continue
			}
			return delegationResponse{Delegation: &fullDelegationEntry{
				Delegator:          delegation.Delegator,
				Validator:          delegation.Validator,
				Amount:             toWasmCoin(delegation.Amount),
				CanRedelegate:      toWasmCoin(delegation.CanRedelegate),
				AccumulatedRewards: toWasmCoins(delegation.AccumulatedRewards),
			}}, nil
		}
		return delegationResponse{}, nil
	}

	return nil, unsupportedRequest("staking")
}
