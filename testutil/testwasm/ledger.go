package testwasm

import (
	"maps"
	"math/big"
	"slices"

	"cosmossdk.io/math"
)

// maxUint128BitLen is the width of the contracts' Uint128 amounts.
const maxUint128BitLen = 128

// HolderBalance is the balance of a single holder of a token contract.
type HolderBalance struct {
	Holder  string
	Balance math.Uint
}

// ContractBalances lists the holder balances of one token contract.
type ContractBalances struct {
	Contract string
	Holders  []HolderBalance
}

// TokenLedger maps token contract addresses to the balances of their holders.
// It is built once and never mutated afterwards; reconfiguring a querier
// replaces its ledger with a new one.
type TokenLedger struct {
	balances map[string]map[string]math.Uint
}

// NewTokenLedger builds a ledger from balances. A holder repeated within one
// contract keeps its last balance; a contract repeated in balances keeps only
// its last holder list.
func NewTokenLedger(balances ...ContractBalances) *TokenLedger {
	ledger := &TokenLedger{
		balances: make(map[string]map[string]math.Uint, len(balances)),
	}
	for _, contractBalances := range balances {
		holders := make(map[string]math.Uint, len(contractBalances.Holders))
		for _, holderBalance := range contractBalances.Holders {
			holders[holderBalance.Holder] = holderBalance.Balance
		}
		ledger.balances[contractBalances.Contract] = holders
	}
	return ledger
}

// Contracts returns the configured token contract addresses, sorted.
func (l *TokenLedger) Contracts() []string {
	return slices.Sorted(maps.Keys(l.balances))
}

// Balance returns the balance of holder in the token contract, and whether the
// pair was configured.
func (l *TokenLedger) Balance(contract, holder string) (math.Uint, bool) {
	holders, ok := l.balances[contract]
	if !ok {
		return math.ZeroUint(), false
	}
	balance, ok := holders[holder]
	if !ok || isUnset(balance) {
		return math.ZeroUint(), ok
	}
	return balance, true
}

// TotalSupply sums the balances of every holder of the token contract. The
// boolean is false if the contract has no configured balances. A sum wider
// than a Uint128 is reported as ErrWasmQuerySupplyOverflow.
func (l *TokenLedger) TotalSupply(contract string) (math.Uint, bool, error) {
	holders, ok := l.balances[contract]
	if !ok {
		return math.ZeroUint(), false, nil
	}

	total := new(big.Int)
	for _, balance := range holders {
		if isUnset(balance) {
			continue
		}
		total.Add(total, balance.BigInt())
	}
	if total.BitLen() > maxUint128BitLen {
		return math.ZeroUint(), true, ErrWasmQuerySupplyOverflow.Wrapf(
			"contract %s: total supply %s", contract, total,
		)
	}
	return math.NewUintFromBigInt(total), true, nil
}

// isUnset reports whether u is the zero value of math.Uint, which carries no
// integer and must not be operated on.
func isUnset(u math.Uint) bool {
	return u == (math.Uint{})
}
