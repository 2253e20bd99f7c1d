package basset_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/wasmquerier/pkg/basset"
	"github.com/pokt-network/wasmquerier/pkg/canonical"
	"github.com/pokt-network/wasmquerier/pkg/storagekey"
)

func TestStorageKeys(t *testing.T) {
	require.Equal(t, storagekey.LengthPrefixed([]byte("pool_info")), basset.PoolInfoKey())
	require.Equal(t, storagekey.LengthPrefixed([]byte("token_info")), basset.TokenInfoKey())
	require.NotEqual(t, basset.PoolInfoKey(), basset.TokenInfoKey())
}

func TestEncodeStorageValue_IsDoublyEncoded(t *testing.T) {
	pool := basset.NewPoolInfo(canonical.CanonicalAddr{0x01}, canonical.CanonicalAddr{0x02})

	bz, err := basset.EncodeStorageValue(pool)
	require.NoError(t, err)

	// The outer layer is a JSON string holding the base64 encoded inner JSON.
	var inner []byte
	require.NoError(t, json.Unmarshal(bz, &inner))
	require.JSONEq(t, `{
		"exchange_rate": "0.000000000000000000",
		"total_bond_amount": "0",
		"last_index_modification": 0,
		"reward_account": "AQ==",
		"is_reward_exist": true,
		"is_token_exist": true,
		"token_account": "Ag=="
	}`, string(inner))

	var decoded basset.PoolInfo
	require.NoError(t, basset.DecodeStorageValue(bz, &decoded))
	require.True(t, decoded.IsRewardExist)
	require.True(t, decoded.IsTokenExist)
	require.True(t, decoded.TotalBondAmount.IsZero())
	require.True(t, decoded.ExchangeRate.IsZero())
	require.Equal(t, pool.RewardAccount, decoded.RewardAccount)
}

func TestTokenInfo_JSON(t *testing.T) {
	info := basset.TokenInfo{
		Name:        "bluna",
		Symbol:      "BLUNA",
		Decimals:    6,
		TotalSupply: math.NewUint(150),
		Mint:        &basset.MinterData{Minter: canonical.CanonicalAddr{0x03}},
		Owner:       canonical.CanonicalAddr{0x03},
	}

	bz, err := json.Marshal(info)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "bluna",
		"symbol": "BLUNA",
		"decimals": 6,
		"total_supply": "150",
		"mint": {"minter": "Aw==", "cap": null},
		"owner": "Aw=="
	}`, string(bz))
}

func TestDecodeStorageValue_RejectsSingleEncoding(t *testing.T) {
	bz, err := json.Marshal(basset.TokenInfo{TotalSupply: math.ZeroUint()})
	require.NoError(t, err)

	var decoded basset.TokenInfo
	require.Error(t, basset.DecodeStorageValue(bz, &decoded))
}
