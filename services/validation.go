package services

import (
	"strings"
	"time"
)

// TimeLayout is the wire format for reservation times and timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the wire format for the reservation list date filter.
const DateLayout = "2006-01-02"

func validatePositiveInt(value int, field string) *ValidationError {
	if value <= 0 {
		return validationf(field, "%s must be a positive integer", field)
	}
	return nil
}

func validateNonNegativeNumber(value float64, field string) *ValidationError {
	if value < 0 {
		return validationf(field, "%s must be a non-negative number", field)
	}
	return nil
}

func validateNonEmpty(value, field string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return validationf(field, "%s is required", field)
	}
	return nil
}

func parseTime(value, field string) (time.Time, *ValidationError) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, validationf(field, "invalid %s format, expected YYYY-MM-DD HH:MM:SS", field)
	}
	return t, nil
}
