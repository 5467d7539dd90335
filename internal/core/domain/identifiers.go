package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RecordID is the opaque identifier the remote store assigns to a record.
// The empty value means the record has not been persisted yet.
type RecordID string

// OwnerID identifies the user owning a record collection.
type OwnerID string

func (id RecordID) String() string { return string(id) }

func (id OwnerID) String() string { return string(id) }

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	s, err := unmarshalIdentifier(data)
	if err != nil {
		return fmt.Errorf("decoding record id: %w", err)
	}
	*id = RecordID(s)
	return nil
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *OwnerID) UnmarshalJSON(data []byte) error {
	s, err := unmarshalIdentifier(data)
	if err != nil {
		return fmt.Errorf("decoding owner id: %w", err)
	}
	*id = OwnerID(s)
	return nil
}

func unmarshalIdentifier(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	return n.String(), nil
}

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses YYYY-MM-DD, or an RFC 3339 timestamp truncated to its date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
