package utils

import (
	"strconv"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
