package testwasm

import (
	"github.com/pokt-network/wasmquerier/pkg/canonical"
	"github.com/pokt-network/wasmquerier/pkg/polylog"
)

// Fixtures are the fixed identities baked into synthesized records. Existing
// contract tests expect DefaultFixtures.
type Fixtures struct {
	// RewardAddr is the human address of the hub's reward contract.
	RewardAddr string
	// TokenAddr is the human address of the hub's token contract.
	TokenAddr string
	// GovernanceAddr is both minter and owner of the token.
	GovernanceAddr string

	TokenName     string
	TokenSymbol   string
	TokenDecimals uint8
}

// DefaultFixtures returns the identities used by the bonded-LUNA contract tests.
func DefaultFixtures() Fixtures {
	return Fixtures{
		RewardAddr:     "reward",
		TokenAddr:      "token",
		GovernanceAddr: "governance",
		TokenName:      "bluna",
		TokenSymbol:    "BLUNA",
		TokenDecimals:  6,
	}
}

// QuerierOption configures a WasmMockQuerier at construction time.
type QuerierOption func(*WasmMockQuerier)

// WithLogger sets the logger the querier reports every dispatch to.
// The default logger discards everything.
func WithLogger(logger polylog.Logger) QuerierOption {
	return func(q *WasmMockQuerier) {
		q.logger = logger
	}
}

// WithAddressResolver replaces the canonical-length based mock resolver.
func WithAddressResolver(resolver canonical.Resolver) QuerierOption {
	return func(q *WasmMockQuerier) {
		q.resolver = resolver
	}
}

// WithFixtures overrides the identities baked into synthesized records.
func WithFixtures(fixtures Fixtures) QuerierOption {
	return func(q *WasmMockQuerier) {
		q.fixtures = fixtures
	}
}

// WithInitialTokenBalances seeds the token ledger; see WasmMockQuerier.WithTokenBalances.
func WithInitialTokenBalances(balances ...ContractBalances) QuerierOption {
	return func(q *WasmMockQuerier) {
		q.ledger = NewTokenLedger(balances...)
	}
}
