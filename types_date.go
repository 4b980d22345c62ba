package pulley

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 form.
const DateFormat = "2006-01-02" // write date format

const readMonthFormat = "2006-1"

// MonthFormat is the format used to represent months as strings (e.g. "2024-03").
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the calendar month the date falls in.
func (d Date) Month() Month { return Month{d.y, d.m} }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1.
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshal type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month represents a calendar month, the natural reporting and billing
// period of the ledger.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{d.y, d.m}
}

// ThisMonth returns the current calendar month.
func ThisMonth() Month { return Today().Month() }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month as "2006-01".
func (m Month) String() string { return m.first().Format(MonthFormat) }

// Compact formats the month as "200601", the form used in invoice numbers.
func (m Month) Compact() string { return m.first().Format("200601") }

// Contains reports whether the given date falls inside the month.
// A zero month contains every date, so it acts as a no-op filter.
func (m Month) Contains(d Date) bool {
	return m.IsZero() || (d.y == m.y && d.m == m.m)
}

// Days returns every date of the month in order.
func (m Month) Days() []Date {
	first := NewDate(m.y, m.m, 1)
	last := NewDate(m.y, m.m+1, 0)
	days := make([]Date, 0, last.Day())
	for d := first; !d.After(last); d = d.Add(1) {
		days = append(days, d)
	}
	return days
}

func (m Month) first() time.Time {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth parses a Month from a string. It is lenient and accepts
// formats like "2025-7".
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, mo, _ := on.Date()
	return Month{y, mo}, nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}
