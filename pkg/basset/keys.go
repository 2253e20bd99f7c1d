package basset

import "github.com/pokt-network/wasmquerier/pkg/storagekey"

const (
	// PoolInfoNamespace is the storage namespace of the hub contract's PoolInfo.
	PoolInfoNamespace = "pool_info"
	// TokenInfoNamespace is the storage namespace of the token contract's TokenInfo.
	TokenInfoNamespace = "token_info"
)

// PoolInfoKey returns the raw storage key under which PoolInfo is stored.
func PoolInfoKey() []byte {
	return storagekey.LengthPrefixed([]byte(PoolInfoNamespace))
}

// TokenInfoKey returns the raw storage key under which TokenInfo is stored.
func TokenInfoKey() []byte {
	return storagekey.LengthPrefixed([]byte(TokenInfoNamespace))
}
