package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const clockLayout = "15:04:05"

// ClockTime is the HH:MM:SS text of a TIME column. lib/pq decodes TIME into
// a time.Time on year 0, while sqlite hands the stored text back unchanged.
type ClockTime string

func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*c = ClockTime(v.Format(clockLayout))
	case string:
		*c = ClockTime(v)
	case []byte:
		*c = ClockTime(string(v))
	case nil:
		*c = ""
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
	return nil
}

func (c ClockTime) Value() (driver.Value, error) {
	return string(c), nil
}
