package testwasm

import (
	"cosmossdk.io/depinject"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pokt-network/wasmquerier/pkg/canonical"
)

// MockContractAddr is the contract address whose bank balance is seeded by
// NewMockDependencies.
const MockContractAddr = "cosmos2contract"

// MockDependencies bundles the storage, address api and querier a contract
// unit test runs against.
type MockDependencies struct {
	Storage dbm.DB
	API     canonical.Resolver
	Querier *WasmMockQuerier
}

// NewMockDependencies returns fresh mock dependencies. The querier forwards to
// a BaseSimulator in which MockContractAddr holds contractBalance, and both the
// api and the querier use a MockResolver of canonicalLength.
func NewMockDependencies(
	canonicalLength int,
	contractBalance sdk.Coins,
	opts ...QuerierOption,
) (*MockDependencies, error) {
	resolver, err := canonical.NewMockResolver(canonicalLength)
	if err != nil {
		return nil, ErrWasmQuerierInvalidConfig.Wrap(err.Error())
	}

	base := NewBaseSimulator(map[string]sdk.Coins{
		MockContractAddr: contractBalance,
	})

	querier, err := NewWasmMockQuerierFromDeps(
		depinject.Supply(base, resolver),
		opts...,
	)
	if err != nil {
		return nil, err
	}

	return &MockDependencies{
		Storage: dbm.NewMemDB(),
		API:     resolver,
		Querier: querier,
	}, nil
}

// NewWasmMockQuerierFromDeps returns a new WasmMockQuerier by injecting the
// dependencies provided by the depinject.Config.
//
// Required dependencies:
// - BaseQuerier
// - canonical.Resolver
func NewWasmMockQuerierFromDeps(
	deps depinject.Config,
	opts ...QuerierOption,
) (*WasmMockQuerier, error) {
	var (
		base     BaseQuerier
		resolver canonical.Resolver
	)

	if err := depinject.Inject(
		deps,
		&base,
		&resolver,
	); err != nil {
		return nil, err
	}

	return newWasmMockQuerier(base, resolver, opts...)
}
