package canonical

import (
	"slices"
	"unicode/utf8"
)

const (
	// minHumanAddrLen is the shortest human address the mock API accepts.
	minHumanAddrLen = 3
	// shuffles is how many riffle shuffles are applied when canonicalizing.
	shuffles = 18
)

var _ Resolver = (*MockResolver)(nil)

// MockResolver mirrors the CosmWasm mock API: the human address is zero-padded
// to the canonical length, rotated by the sum of its bytes and riffle shuffled.
// It is not meant to be secure, only to destroy the obvious structure of the
// human address while staying reversible.
type MockResolver struct {
	canonicalLength int
}

// NewMockResolver returns a MockResolver producing canonical addresses of
// canonicalLength bytes. The riffle shuffle is only defined for an even
// number of bytes.
func NewMockResolver(canonicalLength int) (*MockResolver, error) {
	if canonicalLength < minHumanAddrLen || canonicalLength%2 != 0 {
		return nil, ErrCanonicalInvalidLength.Wrapf(
			"canonical length must be even and at least %d, got %d",
			minHumanAddrLen, canonicalLength,
		)
	}
	return &MockResolver{canonicalLength: canonicalLength}, nil
}

// CanonicalLength returns the width of every address produced by the resolver.
func (r *MockResolver) CanonicalLength() int {
	return r.canonicalLength
}

// Canonicalize implements Resolver.
func (r *MockResolver) Canonicalize(human string) (CanonicalAddr, error) {
	if len(human) < minHumanAddrLen {
		return nil, ErrCanonicalHumanAddrTooShort.Wrapf("%q", human)
	}
	if len(human) > r.canonicalLength {
		return nil, ErrCanonicalHumanAddrTooLong.Wrapf("%q exceeds %d bytes", human, r.canonicalLength)
	}

	out := make([]byte, r.canonicalLength)
	copy(out, human)

	rotateLeft(out, digitSum(out)%r.canonicalLength)
	for range shuffles {
		out = riffleShuffle(out)
	}
	return out, nil
}

// Humanize implements Resolver.
func (r *MockResolver) Humanize(canonical CanonicalAddr) (string, error) {
	if len(canonical) != r.canonicalLength {
		return "", ErrCanonicalAddrInvalidLength.Wrapf("got %d, expected %d", len(canonical), r.canonicalLength)
	}

	tmp := slices.Clone([]byte(canonical))
	for range shuffles {
		tmp = unriffleShuffle(tmp)
	}
	// The byte sum is permutation invariant so it matches the encode side.
	rotateRight(tmp, digitSum(tmp)%r.canonicalLength)

	trimmed := make([]byte, 0, len(tmp))
	for _, b := range tmp {
		if b != 0x00 {
			trimmed = append(trimmed, b)
		}
	}
	if !utf8.Valid(trimmed) {
		return "", ErrCanonicalAddrInvalidUTF8.Wrapf("%s", canonical)
	}
	return string(trimmed), nil
}

func digitSum(input []byte) int {
	sum := 0
	for _, b := range input {
		sum += int(b)
	}
	return sum
}

func rotateLeft(input []byte, n int) {
	slices.Reverse(input[:n])
	slices.Reverse(input[n:])
	slices.Reverse(input)
}

func rotateRight(input []byte, n int) {
	rotateLeft(input, len(input)-n)
}

// riffleShuffle interleaves the two halves of input, starting with the right
// half: [a b c d] -> [c a d b].
func riffleShuffle(input []byte) []byte {
	mid := len(input) / 2
	out := make([]byte, 0, len(input))
	for i := 0; i < mid; i++ {
		out = append(out, input[mid+i], input[i])
	}
	return out
}

func unriffleShuffle(input []byte) []byte {
	mid := len(input) / 2
	out := make([]byte, len(input))
	for i := 0; i < mid; i++ {
		out[mid+i] = input[2*i]
		out[i] = input[2*i+1]
	}
	return out
}
