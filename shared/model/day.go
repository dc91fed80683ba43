package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"studyroom/shared/constant"
)

// Day is a calendar date kept as "YYYY-MM-DD". It maps onto a DATE column
// without passing through any time zone.
type Day string

func (d *Day) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = Day(value.Format(constant.DayFormat))
	case string:
		*d = dayPrefix(value)
	case []byte:
		*d = dayPrefix(string(value))
	case nil:
		*d = ""
	default:
		return fmt.Errorf("cannot scan %T into Day", src)
	}

	return nil
}

func (d Day) Value() (driver.Value, error) {
	return string(d), nil
}

func (d Day) String() string {
	return string(d)
}

func dayPrefix(value string) Day {
	if len(value) > len(constant.DayFormat) {
		value = value[:len(constant.DayFormat)]
	}

	return Day(value)
}
