// Package units converts between human-readable token amounts and the
// integer smallest-unit strings the intents API expects.
package units

import (
	"strings"
	"time"
)

// ToSmallestUnits converts a human-readable amount (e.g. "1.5") into smallest
// units for a token with the given decimals. Extra fractional digits are
// truncated, leading zeros are stripped and an empty result becomes "0".
func ToSmallestUnits(amount string, decimals int) string {
	whole, fraction, _ := strings.Cut(amount, ".")

	if len(fraction) > decimals {
		fraction = fraction[:decimals]
	} else {
		fraction += strings.Repeat("0", decimals-len(fraction))
	}

	result := strings.TrimLeft(whole+fraction, "0")
	if result == "" {
		return "0"
	}
	return result
}

// FromSmallestUnits converts a smallest-unit amount back into a
// human-readable decimal string without trailing fractional zeros.
func FromSmallestUnits(amount string, decimals int) string {
	if decimals <= 0 {
		return amount
	}

	padded := amount
	if len(padded) < decimals+1 {
		padded = strings.Repeat("0", decimals+1-len(padded)) + padded
	}

	whole := padded[:len(padded)-decimals]
	fraction := strings.TrimRight(padded[len(padded)-decimals:], "0")

	if fraction == "" {
		return whole
	}
	return whole + "." + fraction
}

// GenerateDeadline returns the swap deadline horizon after now
func GenerateDeadline(now time.Time, horizon time.Duration) time.Time {
	return now.Add(horizon).UTC()
}
