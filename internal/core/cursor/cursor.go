// Package cursor implements the opaque keyset pagination token: a
// base64-encoded JSON pair of the last seen sort metric and tiebreak id.
// The wire shape is not part of the public contract; callers round-trip
// tokens verbatim and never construct them
package cursor

import (
	"encoding/base64"
	"encoding/json"
)

// Cursor is the decoded continuation point. Metric is nil once pagination
// has crossed into the NULL-metric partition, where rows order by id alone
type Cursor struct {
	Metric *int64 `json:"m"`
	ID     int64  `json:"id"`
}

// Encode packs a continuation point into an opaque token
func Encode(metric *int64, id int64) string {
	raw, _ := json.Marshal(Cursor{Metric: metric, ID: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode unpacks a token. It never fails: malformed or empty input yields
// (zero, false), which callers treat as first-page semantics
func Decode(token string) (Cursor, bool) {
	if token == "" {
		return Cursor{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// tolerate std encoding and padding from older clients
		raw, err = base64.StdEncoding.DecodeString(token)
		if err != nil {
			return Cursor{}, false
		}
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, false
	}
	if c.ID < 0 {
		return Cursor{}, false
	}
	return c, true
}
