package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateKeyLayout is the canonical wire and storage format for DateKey.
const dateKeyLayout = "2006-01-02"

// DateKey identifies one calendar day. It is the primary key of the
// measurement store: comparisons, arithmetic, and ordering are all done in
// day units, never on the formatted string. The zero value is no date.
type DateKey struct {
	t time.Time
}

// NewDateKey builds a DateKey from calendar components.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateKeyOf truncates a timestamp to its calendar day.
func DateKeyOf(t time.Time) DateKey {
	return NewDateKey(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() DateKey {
	return DateKeyOf(time.Now())
}

// ParseDateKey parses a YYYY-MM-DD string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateKey{t: t}, nil
}

// String formats the day as YYYY-MM-DD.
func (d DateKey) String() string {
	return d.t.Format(dateKeyLayout)
}

// IsZero reports whether the key holds no date.
func (d DateKey) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the midnight-UTC timestamp of the day.
func (d DateKey) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week.
func (d DateKey) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays returns the key n days later (earlier for negative n).
func (d DateKey) AddDays(n int) DateKey {
	return DateKey{t: d.t.AddDate(0, 0, n)}
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d DateKey) Compare(other DateKey) int {
	switch {
	case d.t.Before(other.t):
		return -1
	case d.t.After(other.t):
		return 1
	default:
		return 0
	}
}

// Equal reports whether both keys name the same day.
func (d DateKey) Equal(other DateKey) bool {
	return d.Compare(other) == 0
}

// Before reports whether d is strictly earlier than other.
func (d DateKey) Before(other DateKey) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d DateKey) After(other DateKey) bool {
	return d.Compare(other) > 0
}

// DaysUntil returns the number of calendar days from d to other; negative
// when other is earlier.
func (d DateKey) DaysUntil(other DateKey) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// MarshalJSON encodes the day as a "YYYY-MM-DD" JSON string.
func (d DateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *DateKey) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected JSON string", string(data))
	}
	parsed, err := ParseDateKey(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer; days are stored as TEXT.
func (d DateKey) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *DateKey) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseDateKey(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = DateKeyOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateKey", src)
	}
}
