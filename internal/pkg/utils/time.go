package utils

import (
	"medportal-service/internal/pkg/constvars"
	"time"
)

// ResolveDate returns date when it is a valid calendar date, or today's date
// in loc when date is empty.
func ResolveDate(date string, now time.Time, loc *time.Location) (string, error) {
	if date == "" {
		if loc == nil {
			loc = time.Local
		}
		return now.In(loc).Format(constvars.DateLayout), nil
	}

	_, err := time.Parse(constvars.DateLayout, date)
	if err != nil {
		return "", err
	}
	return date, nil
}

// LoadLocation resolves an IANA zone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
