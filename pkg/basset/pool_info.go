package basset

import (
	"cosmossdk.io/math"

	"github.com/pokt-network/wasmquerier/pkg/canonical"
)

// PoolInfo is the hub contract's bonding pool snapshot.
type PoolInfo struct {
	ExchangeRate          math.LegacyDec          `json:"exchange_rate"`
	TotalBondAmount       math.Uint               `json:"total_bond_amount"`
	LastIndexModification uint64                  `json:"last_index_modification"`
	RewardAccount         canonical.CanonicalAddr `json:"reward_account"`
	IsRewardExist         bool                    `json:"is_reward_exist"`
	IsTokenExist          bool                    `json:"is_token_exist"`
	TokenAccount          canonical.CanonicalAddr `json:"token_account"`
}

// NewPoolInfo returns a PoolInfo with zeroed financial fields and both
// accounts registered.
func NewPoolInfo(rewardAccount, tokenAccount canonical.CanonicalAddr) PoolInfo {
	return PoolInfo{
		ExchangeRate:          math.LegacyZeroDec(),
		TotalBondAmount:       math.ZeroUint(),
		LastIndexModification: 0,
		RewardAccount:         rewardAccount,
		IsRewardExist:         true,
		IsTokenExist:          true,
		TokenAccount:          tokenAccount,
	}
}
