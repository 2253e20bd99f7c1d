package basset

import (
	"encoding/json"
)

// EncodeStorageValue serializes record the way a raw storage read returns it:
// the record's JSON is itself a storage value (an opaque blob), and the query
// response wraps that blob in a second JSON layer.
func EncodeStorageValue(record any) ([]byte, error) {
	inner, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return json.Marshal(inner)
}

// DecodeStorageValue is the inverse of EncodeStorageValue.
func DecodeStorageValue(bz []byte, record any) error {
	var inner []byte
	if err := json.Unmarshal(bz, &inner); err != nil {
		return err
	}
	return json.Unmarshal(inner, record)
}
