package domain

import (
	"encoding/json"
	"time"
)

// Record is the envelope every collection of the record service shares.
// F is the per-entity field bag; all of its members are optional.
type Record[F any] struct {
	ID        string     `json:"record_id"`
	CreatedAt Timestamp  `json:"createdat"`
	UpdatedAt *Timestamp `json:"updatedat"`
	Fields    F          `json:"fields"`
}

// Timestamp accepts the loose timestamp formats the record service emits
// (RFC 3339, numeric offsets without a colon, or a date-time without zone).
// Envelope timestamps are metadata only: null, "" and anything unparseable
// decode to the zero time instead of failing the record.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	if parsed, ok := ParseDate(s, time.UTC); ok {
		t.Time = parsed
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
