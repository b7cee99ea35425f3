// Package money converts between decimal amounts in major currency units and
// integer minor units (cents, kobo). Balance comparisons happen in minor
// units so boundary amounts never hit floating-point rounding.
package money

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAmount is returned for input that is not a non-negative decimal
// amount with at most two fractional digits.
var ErrInvalidAmount = errors.New("invalid amount")

const maxMinor = (1<<63 - 1) / 100

// ParseMinor converts a decimal string in major units to minor units:
// "5000.00" -> 500000, "0.01" -> 1, "10.5" -> 1050.
// At most two fractional digits are accepted; negative amounts are rejected.
func ParseMinor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	// pad "5" -> "50", "" -> "00"
	frac = frac + strings.Repeat("0", 2-len(frac))

	var major int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		if major > maxMinor/10 {
			return 0, ErrInvalidAmount
		}
		major = major*10 + int64(r-'0')
	}
	if major > maxMinor {
		return 0, ErrInvalidAmount
	}

	var cents int64
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
	}

	return major*100 + cents, nil
}

// FormatMinor renders minor units as a decimal string in major units:
// 500000 -> "5000.00".
func FormatMinor(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
