package canonical

import (
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

var _ Resolver = (*Bech32Resolver)(nil)

// Bech32Resolver resolves bech32 encoded addresses with a fixed human readable
// part (e.g. "cosmos" or "terra") into their raw payload bytes.
type Bech32Resolver struct {
	hrp             string
	canonicalLength int
}

// NewBech32Resolver returns a resolver accepting only addresses with the given
// human readable part whose payload is exactly canonicalLength bytes.
func NewBech32Resolver(hrp string, canonicalLength int) (*Bech32Resolver, error) {
	if hrp == "" {
		return nil, ErrCanonicalInvalidBech32Prefix.Wrap("empty human readable part")
	}
	if canonicalLength <= 0 {
		return nil, ErrCanonicalInvalidLength.Wrapf("got %d", canonicalLength)
	}
	return &Bech32Resolver{
		hrp:             hrp,
		canonicalLength: canonicalLength,
	}, nil
}

// Canonicalize implements Resolver.
func (r *Bech32Resolver) Canonicalize(human string) (CanonicalAddr, error) {
	hrp, data, err := bech32.DecodeAndConvert(human)
	if err != nil {
		return nil, ErrCanonicalInvalidBech32.Wrapf("%q: %s", human, err)
	}
	if hrp != r.hrp {
		return nil, ErrCanonicalInvalidBech32Prefix.Wrapf("got %q, expected %q", hrp, r.hrp)
	}
	if len(data) != r.canonicalLength {
		return nil, ErrCanonicalAddrInvalidLength.Wrapf("got %d, expected %d", len(data), r.canonicalLength)
	}
	return data, nil
}

// Humanize implements Resolver.
func (r *Bech32Resolver) Humanize(canonical CanonicalAddr) (string, error) {
	if len(canonical) != r.canonicalLength {
		return "", ErrCanonicalAddrInvalidLength.Wrapf("got %d, expected %d", len(canonical), r.canonicalLength)
	}
	human, err := bech32.ConvertAndEncode(r.hrp, canonical)
	if err != nil {
		return "", ErrCanonicalInvalidBech32.Wrap(err.Error())
	}
	return human, nil
}
