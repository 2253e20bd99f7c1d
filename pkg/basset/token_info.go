package basset

import (
	"cosmossdk.io/math"

	"github.com/pokt-network/wasmquerier/pkg/canonical"
)

// TokenInfo is the cw20 token contract's metadata record.
type TokenInfo struct {
	Name        string                  `json:"name"`
	Symbol      string                  `json:"symbol"`
	Decimals    uint8                   `json:"decimals"`
	TotalSupply math.Uint               `json:"total_supply"`
	Mint        *MinterData             `json:"mint"`
	Owner       canonical.CanonicalAddr `json:"owner"`
}

// MinterData describes who may mint the token and up to which supply.
// A nil Cap means minting is uncapped.
type MinterData struct {
	Minter canonical.CanonicalAddr `json:"minter"`
	Cap    *math.Uint              `json:"cap"`
}
