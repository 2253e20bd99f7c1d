//go:generate go run go.uber.org/mock/mockgen -destination ../../testutil/testwasm/mocks/resolver_mock.go -package mocks . Resolver

package canonical

import (
	"encoding/hex"
	"strings"
)

// CanonicalAddr is the fixed-width binary form of an address. It serializes to
// JSON as base64, matching the CosmWasm `Binary` encoding.
type CanonicalAddr []byte

// String returns the upper-case hex representation of the address.
func (addr CanonicalAddr) String() string {
	return strings.ToUpper(hex.EncodeToString(addr))
}

// Resolver converts between human readable and canonical addresses. Resolution
// MUST be deterministic: the same input always yields the same output for the
// lifetime of a Resolver.
type Resolver interface {
	// Canonicalize returns the canonical form of the human readable address.
	Canonicalize(human string) (CanonicalAddr, error)
	// Humanize is the inverse of Canonicalize.
	Humanize(canonicalAddr CanonicalAddr) (string, error)
}
