// Package testwasm provides a deterministic, in-memory stand-in for the chain
// query interface seen by a CosmWasm contract under unit test.
//
// WasmMockQuerier intercepts raw storage reads addressed to the bonded-LUNA hub
// and token contracts and answers them with records synthesized from a
// test-controlled token balance ledger. Every other request is forwarded,
// unchanged, to a BaseQuerier (usually a BaseSimulator).
//
// A WasmMockQuerier is not safe for concurrent use. Configure it (e.g. via
// WithTokenBalances) before the first query of a test and do not reconfigure it
// while a query is in flight.
package testwasm
