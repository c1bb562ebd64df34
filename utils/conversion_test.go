package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := map[string]string{
		"(312) 555-0142":  "+13125550142",
		"312-555-0142":    "+13125550142",
		"13125550142":     "+13125550142",
		"+1 312 555 0142": "+13125550142",
		"+447911123456":   "+447911123456",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizePhoneNumber(input), "input %q", input)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+13125550142"))
	assert.True(t, IsValidPhoneNumber("(312) 555-0142"))

	assert.False(t, IsValidPhoneNumber(""))
	assert.False(t, IsValidPhoneNumber("555-0142"))
	assert.False(t, IsValidPhoneNumber("1234567890"))
	assert.False(t, IsValidPhoneNumber("0000000000"))
}

func TestIsDateBeforeToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsDateBeforeToday(now.AddDate(0, 0, -1), now))
	// Earlier the same day is not "before today".
	assert.False(t, IsDateBeforeToday(now.Add(-6*time.Hour), now))
	assert.False(t, IsDateBeforeToday(now.AddDate(0, 0, 1), now))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-09", MonthKey(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)))
}
