package utils

import (
	"strings"
	"time"
	"unicode"
)

// NormalizePhoneNumber strips formatting characters and applies a +1 country
// code to bare 10-digit US numbers.
func NormalizePhoneNumber(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if len(cleaned) == 10 {
		return "+1" + cleaned
	}
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "1") {
		return "+" + cleaned
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + cleaned
	}
	return cleaned
}

// IsValidPhoneNumber reports whether the input looks like a dialable number.
func IsValidPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if len(cleaned) < 10 || len(cleaned) > 15 {
		return false
	}

	// Obviously fake inputs.
	badNumbers := map[string]bool{
		"0000000000": true,
		"1111111111": true,
		"1234567890": true,
		"9999999999": true,
		"0123456789": true,
	}
	return !badNumbers[cleaned]
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateBeforeToday compares t against now on the calendar date alone,
// ignoring time of day.
func IsDateBeforeToday(t, now time.Time) bool {
	return DateOnly(t).Before(DateOnly(now))
}

// MonthKey formats t as the "YYYY-MM" key used for availability caching.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
