package testwasm

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/pokt-network/wasmquerier/pkg/basset"
	"github.com/pokt-network/wasmquerier/pkg/canonical"
	"github.com/pokt-network/wasmquerier/pkg/polylog"
	"github.com/pokt-network/wasmquerier/pkg/polylog/polyzero"
	"github.com/pokt-network/wasmquerier/telemetry"
)

var _ wasmvmtypes.Querier = (*WasmMockQuerier)(nil)

// WasmMockQuerier answers raw storage reads of the bonded-LUNA pool_info and
// token_info records and forwards everything else to a BaseQuerier.
type WasmMockQuerier struct {
	base     BaseQuerier
	resolver canonical.Resolver
	fixtures Fixtures
	ledger   *TokenLedger
	routes   routeTable
	logger   polylog.Logger
}

// NewWasmMockQuerier returns a querier forwarding unrecognized requests to base
// and resolving fixture addresses with a canonical.MockResolver producing
// canonicalLength byte addresses.
func NewWasmMockQuerier(
	base BaseQuerier,
	canonicalLength int,
	opts ...QuerierOption,
) (*WasmMockQuerier, error) {
	resolver, err := canonical.NewMockResolver(canonicalLength)
	if err != nil {
		return nil, ErrWasmQuerierInvalidConfig.Wrap(err.Error())
	}
	return newWasmMockQuerier(base, resolver, opts...)
}

func newWasmMockQuerier(
	base BaseQuerier,
	resolver canonical.Resolver,
	opts ...QuerierOption,
) (*WasmMockQuerier, error) {
	q := &WasmMockQuerier{
		base:     base,
		resolver: resolver,
		fixtures: DefaultFixtures(),
		ledger:   NewTokenLedger(),
		routes:   newRouteTable(),
		logger:   polyzero.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(q)
	}

	if q.base == nil {
		return nil, ErrWasmQuerierInvalidConfig.Wrap("base querier is required")
	}
	if q.resolver == nil {
		return nil, ErrWasmQuerierInvalidConfig.Wrap("address resolver is required")
	}
	return q, nil
}

// WithTokenBalances replaces the whole token ledger. Balances configured by an
// earlier call are discarded.
func (q *WasmMockQuerier) WithTokenBalances(balances ...ContractBalances) {
	q.ledger = NewTokenLedger(balances...)
}

// TokenLedger returns the ledger currently used to answer token_info reads.
func (q *WasmMockQuerier) TokenLedger() *TokenLedger {
	return q.ledger
}

// UpdateStaking seeds the staking state of the base querier.
func (q *WasmMockQuerier) UpdateStaking(
	denom string,
	validators []Validator,
	delegations []FullDelegation,
) error {
	updater, ok := q.base.(StakingUpdater)
	if !ok {
		return ErrWasmQuerierInvalidConfig.Wrapf("base querier %T does not support staking", q.base)
	}
	updater.UpdateStaking(denom, validators, delegations)
	return nil
}

// RawQuery decodes the serialized query request and dispatches it. Decoding
// failures are returned as a *QueryError wrapping ErrWasmQueryParsing and
// carrying request unchanged.
func (q *WasmMockQuerier) RawQuery(request []byte) ([]byte, error) {
	queryRequest, err := decodeQueryRequest(request)
	if err != nil {
		telemetry.WasmQueryFailed("parsing")
		q.logger.Debug().Err(err).Msg("unable to parse wasm query request")
		return nil, newQueryError(
			ErrWasmQueryParsing.Wrapf("Parsing query request: %s", err),
			request,
		)
	}
	return q.HandleQuery(queryRequest)
}

// MustRawQuery is RawQuery for callers which treat every failure as fatal.
func (q *WasmMockQuerier) MustRawQuery(request []byte) []byte {
	bz, err := q.RawQuery(request)
	if err != nil {
		panic(err)
	}
	return bz
}

// Query implements wasmvmtypes.Querier. Queries are not metered.
func (q *WasmMockQuerier) Query(request wasmvmtypes.QueryRequest, _ uint64) ([]byte, error) {
	return q.HandleQuery(request)
}

// GasConsumed implements wasmvmtypes.Querier.
func (q *WasmMockQuerier) GasConsumed() uint64 {
	return 0
}

// HandleQuery dispatches an already decoded request.
func (q *WasmMockQuerier) HandleQuery(request wasmvmtypes.QueryRequest) ([]byte, error) {
	queryRoute := q.routes.classify(request)

	var contractAddr string
	if queryRoute != routeForward {
		contractAddr = request.Wasm.Raw.ContractAddr
	}

	q.logger.Debug().
		Str("route", queryRoute.String()).
		Str("contract_addr", contractAddr).
		Msg("dispatching wasm query")
	telemetry.WasmQueryRouted(queryRoute.String(), contractAddr)

	var (
		response []byte
		err      error
	)
	switch queryRoute {
	case routeForward:
		// Base querier results, errors included, are returned as is.
		return q.base.HandleQuery(request)
	case routePoolInfo:
		response, err = q.poolInfo()
	case routeTokenInfo:
		response, err = q.tokenInfo(contractAddr, request.Wasm.Raw.Key)
	case routeUnhandledKey:
		queryErr := newQueryError(
			ErrWasmQueryUnhandledStorageKey.Wrapf("contract %s, key %X", contractAddr, []byte(request.Wasm.Raw.Key)),
			request.Wasm.Raw.Key,
		)
		queryErr.ContractAddr = contractAddr
		err = queryErr
	}

	if err != nil {
		telemetry.WasmQueryFailed(queryRoute.String())
		q.logger.Debug().
			Str("route", queryRoute.String()).
			Str("contract_addr", contractAddr).
			Err(err).
			Msg("wasm query failed")
		return nil, err
	}
	return response, nil
}

func (q *WasmMockQuerier) poolInfo() ([]byte, error) {
	rewardAccount, err := q.resolve(q.fixtures.RewardAddr)
	if err != nil {
		return nil, err
	}
	tokenAccount, err := q.resolve(q.fixtures.TokenAddr)
	if err != nil {
		return nil, err
	}

	return encodeStorageValue(basset.NewPoolInfo(rewardAccount, tokenAccount))
}

func (q *WasmMockQuerier) tokenInfo(contractAddr string, key []byte) ([]byte, error) {
	totalSupply, found, err := q.ledger.TotalSupply(contractAddr)
	if err != nil {
		queryErr := newQueryError(err, key)
		queryErr.ContractAddr = contractAddr
		return nil, queryErr
	}
	if !found {
		queryErr := newQueryError(
			ErrWasmQueryInvalidRequest.Wrapf("No balance info exists for the contract %s", contractAddr),
			key,
		)
		queryErr.ContractAddr = contractAddr
		return nil, queryErr
	}

	governance, err := q.resolve(q.fixtures.GovernanceAddr)
	if err != nil {
		return nil, err
	}

	return encodeStorageValue(basset.TokenInfo{
		Name:        q.fixtures.TokenName,
		Symbol:      q.fixtures.TokenSymbol,
		Decimals:    q.fixtures.TokenDecimals,
		TotalSupply: totalSupply,
		Mint: &basset.MinterData{
			Minter: governance,
			Cap:    nil,
		},
		Owner: governance,
	})
}

func (q *WasmMockQuerier) resolve(human string) (canonical.CanonicalAddr, error) {
	addr, err := q.resolver.Canonicalize(human)
	if err != nil {
		return nil, newQueryError(
			ErrWasmQueryAddressResolution.Wrapf("%q: %s", human, err),
			[]byte(human),
		)
	}
	return addr, nil
}

func encodeStorageValue(record any) ([]byte, error) {
	bz, err := basset.EncodeStorageValue(record)
	if err != nil {
		return nil, newQueryError(ErrWasmQueryEncoding.Wrap(err.Error()), nil)
	}
	return bz, nil
}

// decodeQueryRequest strictly decodes a JSON query request: unknown fields,
// trailing data and requests without any variant set are rejected.
func decodeQueryRequest(bz []byte) (wasmvmtypes.QueryRequest, error) {
	var request wasmvmtypes.QueryRequest

	decoder := json.NewDecoder(bytes.NewReader(bz))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		return wasmvmtypes.QueryRequest{}, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return wasmvmtypes.QueryRequest{}, errors.New("unexpected data after query request")
	}
	if reflect.ValueOf(request).IsZero() {
		return wasmvmtypes.QueryRequest{}, errors.New("query request has no variant set")
	}
	return request, nil
}
