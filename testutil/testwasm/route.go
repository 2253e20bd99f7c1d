package testwasm

import (
	"bytes"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/pokt-network/wasmquerier/pkg/basset"
)

// route is the closed set of outcomes a query can be dispatched to.
type route int

const (
	// routeForward hands the request, unchanged, to the base querier.
	routeForward route = iota
	// routePoolInfo answers a raw read of the hub's pool_info key.
	routePoolInfo
	// routeTokenInfo answers a raw read of a token contract's token_info key.
	routeTokenInfo
	// routeUnhandledKey is a raw storage read of a key the querier does not know.
	routeUnhandledKey
)

var routeNames = map[route]string{
	routeForward:      "forward",
	routePoolInfo:     basset.PoolInfoNamespace,
	routeTokenInfo:    basset.TokenInfoNamespace,
	routeUnhandledKey: "unhandled_key",
}

func (r route) String() string {
	if name, ok := routeNames[r]; ok {
		return name
	}
	return "unknown"
}

// routeTable holds the storage keys recognized by the querier.
type routeTable struct {
	poolInfoKey  []byte
	tokenInfoKey []byte
}

func newRouteTable() routeTable {
	return routeTable{
		poolInfoKey:  basset.PoolInfoKey(),
		tokenInfoKey: basset.TokenInfoKey(),
	}
}

// classify returns the route of request. Only raw storage reads addressed to a
// contract are specialized; every other shape is forwarded.
func (rt routeTable) classify(request wasmvmtypes.QueryRequest) route {
	if request.Wasm == nil || request.Wasm.Raw == nil {
		return routeForward
	}

	switch key := request.Wasm.Raw.Key; {
	case bytes.Equal(key, rt.poolInfoKey):
		return routePoolInfo
	case bytes.Equal(key, rt.tokenInfoKey):
		return routeTokenInfo
	default:
		return routeUnhandledKey
	}
}
