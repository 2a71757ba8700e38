package changes

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns a stable hex digest of the value's JSON form, used as the
// notification dedup key: the same change set always maps to the same key,
// so a retried pass collides with the row it already wrote.
func Hash(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only unmarshalable types (channels, funcs) end up here; the change
		// structs are plain data.
		return "unhashable"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
