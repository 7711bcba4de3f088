// Package calendar holds the ISO calendar-date type used for scheduling plus the
// week and month arithmetic behind list and report endpoints.
package calendar

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The zero value is the empty string.
// Values produced by Parse or FromTime compare correctly with < and >.
type Date string

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return FromTime(t), nil
}

// MustParse is for fixtures and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	t, _ := time.Parse(Layout, string(d))
	return t
}

func (d Date) String() string { return string(d) }

func (d Date) IsZero() bool { return d == "" }

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(o Date) bool { return d < o }

// --------------------------------------------------
// database/sql + gorm
// --------------------------------------------------

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = FromTime(v)
	case string:
		*d = Date(firstTen(v))
	case []byte:
		*d = Date(firstTen(string(v)))
	default:
		return fmt.Errorf("calendar: cannot scan %T into Date", src)
	}
	return nil
}

func (Date) GormDataType() string {
	return "date"
}

func firstTen(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
