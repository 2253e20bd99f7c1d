// Package canonical converts human readable contract and account addresses into
// their fixed-width canonical binary form and back.
//
// Two resolvers are provided:
//   - MockResolver reproduces the address mangling of the CosmWasm mock API, so
//     canonical addresses computed in Go tests are byte-identical to the ones a
//     contract sees in its own unit tests.
//   - Bech32Resolver decodes real bech32 addresses of a given human readable part.
package canonical
