package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date stored in a DATE column and rendered as
// YYYY-MM-DD. Scanning normalizes driver representations: the postgres
// driver returns DATE values as time.Time while SQLite returns the stored
// text, so a plain string field would read back differently per driver.
type Date string

// Value implements the driver.Valuer interface
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan implements the sql.Scanner interface
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case []byte:
		*d = normalizeDate(string(v))
	case string:
		*d = normalizeDate(v)
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}
	return nil
}

// normalizeDate strips any time-of-day suffix from a textual date.
func normalizeDate(s string) Date {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return Date(s)
}
