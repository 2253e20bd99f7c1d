package canonical

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                       = "canonical"
	ErrCanonicalInvalidLength       = sdkerrors.Register(codespace, 1, "invalid canonical address length")
	ErrCanonicalHumanAddrTooShort   = sdkerrors.Register(codespace, 2, "human address too short")
	ErrCanonicalHumanAddrTooLong    = sdkerrors.Register(codespace, 3, "human address too long")
	ErrCanonicalAddrInvalidLength   = sdkerrors.Register(codespace, 4, "canonical address length not correct")
	ErrCanonicalAddrInvalidUTF8     = sdkerrors.Register(codespace, 5, "canonical address does not decode to valid utf-8")
	ErrCanonicalInvalidBech32       = sdkerrors.Register(codespace, 6, "invalid bech32 address")
	ErrCanonicalInvalidBech32Prefix = sdkerrors.Register(codespace, 7, "invalid bech32 human readable part")
)
