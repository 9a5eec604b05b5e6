package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamp is the canonical instant type for event times. Clients send
// times in several representations (RFC3339 strings, date-only strings,
// unix milliseconds); all of them are normalized here at decode time so
// the rest of the code only ever sees time.Time values.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time in a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Accepted string layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts an RFC3339 string, a bare date, a unix
// millisecond number, or null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		ts.Time = time.Time{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, str); err == nil {
				ts.Time = t
				return nil
			}
		}
		return fmt.Errorf("unrecognized timestamp %q", str)
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("unrecognized timestamp %s", s)
	}
	ts.Time = time.UnixMilli(millis).UTC()
	return nil
}

// MarshalJSON emits RFC3339 in UTC, or null for the zero value.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.UTC().Format(time.RFC3339))
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		ts.Time = time.Time{}
		return nil
	case time.Time:
		ts.Time = v
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case int64:
		ts.Time = time.UnixMilli(v).UTC()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (ts *Timestamp) scanString(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	// SQLite DATETIME text formats.
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Timestamp", s)
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return ts.UTC(), nil
}

// Ptr returns the wrapped time as a *time.Time, or nil for the zero
// value. Comparison helpers operate on *time.Time so a missing instant
// stays distinguishable from the epoch.
func (ts Timestamp) Ptr() *time.Time {
	if ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
