// Package storagekey builds contract storage keys the way CosmWasm contracts
// namespace their state: every namespace is preceded by a two byte big-endian
// length header so that different logical regions of a contract's key space
// can never collide.
package storagekey

import (
	"encoding/binary"
	"fmt"
	"math"
)

// lengthHeaderSize is the width of the big-endian length header.
const lengthHeaderSize = 2

// LengthPrefixed returns the namespace preceded by its length header.
// It panics if the namespace is longer than math.MaxUint16 bytes, which can
// only happen through a programming error since namespaces are static labels.
func LengthPrefixed(namespace []byte) []byte {
	out := make([]byte, 0, lengthHeaderSize+len(namespace))
	out = appendLengthPrefixed(out, namespace)
	return out
}

// LengthPrefixedNested concatenates the length-prefixed form of every namespace.
func LengthPrefixedNested(namespaces ...[]byte) []byte {
	size := 0
	for _, namespace := range namespaces {
		size += lengthHeaderSize + len(namespace)
	}

	out := make([]byte, 0, size)
	for _, namespace := range namespaces {
		out = appendLengthPrefixed(out, namespace)
	}
	return out
}

// NamespacedKey returns the full storage key of key stored under the
// (possibly nested) namespaces. The key itself is not length-prefixed.
func NamespacedKey(key []byte, namespaces ...[]byte) []byte {
	prefix := LengthPrefixedNested(namespaces...)
	return append(prefix, key...)
}

func appendLengthPrefixed(out, namespace []byte) []byte {
	if len(namespace) > math.MaxUint16 {
		panic(fmt.Sprintf("only supports namespaces up to length 0xFFFF, got %d", len(namespace)))
	}
	out = binary.BigEndian.AppendUint16(out, uint16(len(namespace)))
	return append(out, namespace...)
}
