package testwasm

import (
	"bytes"
	"errors"

	sdkerrors "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
)

var (
	codespace                       = "wasm_mock_querier"
	ErrWasmQueryParsing             = sdkerrors.Register(codespace, 1, "failed to parse query request")
	ErrWasmQueryInvalidRequest      = sdkerrors.Register(codespace, 2, "invalid query request")
	ErrWasmQueryUnhandledStorageKey = sdkerrors.Register(codespace, 3, "raw storage key matches no known prefix")
	ErrWasmQuerySupplyOverflow      = sdkerrors.Register(codespace, 4, "total supply overflows Uint128")
	ErrWasmQueryAddressResolution   = sdkerrors.Register(codespace, 5, "unable to resolve fixture address")
	ErrWasmQueryEncoding            = sdkerrors.Register(codespace, 6, "unable to encode query response")
	ErrWasmQueryUnsupported         = sdkerrors.Register(codespace, 7, "unsupported query request")
	ErrWasmQueryNoSuchContract      = sdkerrors.Register(codespace, 8, "no such contract")
	ErrWasmQuerierInvalidConfig     = sdkerrors.Register(codespace, 9, "invalid wasm mock querier configuration")
)

var (
	fixtureCodespace             = "wasm_fixture"
	ErrWasmFixtureEmpty          = sdkerrors.Register(fixtureCodespace, 1, "empty token balances fixture")
	ErrWasmFixtureUnmarshalYAML  = sdkerrors.Register(fixtureCodespace, 2, "fixture reader cannot unmarshal yaml content")
	ErrWasmFixtureInvalidEntry   = sdkerrors.Register(fixtureCodespace, 3, "invalid entry in token balances fixture")
	ErrWasmFixtureInvalidBalance = sdkerrors.Register(fixtureCodespace, 4, "invalid balance in token balances fixture")
)

var _ error = (*QueryError)(nil)

// QueryError is the structured failure returned by a query. It wraps one of the
// registered sentinel errors above, so callers can use errors.Is, and carries
// the bytes which caused the failure for test assertions.
type QueryError struct {
	err error

	// Request is a copy of the offending bytes: the full envelope for parsing
	// failures, the raw storage key for storage read failures.
	Request []byte
	// Kind names the request variant of an unsupported request.
	Kind string
	// ContractAddr is the queried contract, when there is one.
	ContractAddr string
}

func newQueryError(err error, request []byte) *QueryError {
	return &QueryError{
		err:     err,
		Request: bytes.Clone(request),
	}
}

// Error implements error.
func (e *QueryError) Error() string {
	return e.err.Error()
}

// Unwrap returns the wrapped sentinel error.
func (e *QueryError) Unwrap() error {
	return e.err
}

// ToSystemError converts the failure into the system error a contract would
// receive from the chain for the same query.
func (e *QueryError) ToSystemError() *wasmvmtypes.SystemError {
	switch {
	case errors.Is(e.err, ErrWasmQueryUnsupported):
		return &wasmvmtypes.SystemError{
			UnsupportedRequest: &wasmvmtypes.UnsupportedRequest{Kind: e.Kind},
		}
	case errors.Is(e.err, ErrWasmQueryNoSuchContract):
		return &wasmvmtypes.SystemError{
			NoSuchContract: &wasmvmtypes.NoSuchContract{Addr: e.ContractAddr},
		}
	default:
		return &wasmvmtypes.SystemError{
			InvalidRequest: &wasmvmtypes.InvalidRequest{
				Err:     e.err.Error(),
				Request: e.Request,
			},
		}
	}
}
