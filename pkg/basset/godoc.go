// Package basset holds the storage records which the bonded-LUNA hub and token
// contracts expose to raw storage reads, together with the storage keys they
// live under. The JSON encoding of every record matches the contracts' own
// serialization so that bytes produced here can be consumed by contract code.
package basset
