// Package core holds the domain types and money handling for the ledger.
//
// Monetary amounts are stored as integer centavos. Conversion between the
// decimal representation users type and centavos goes through exact decimal
// arithmetic so repeated round trips never drift.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var centavosPorReal = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal amount string into integer centavos.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, rounds
// half-up at the second fractional digit and scales by 100. Returns
// ErrInvalidAmount when the input is not a finite decimal.
//
// Examples:
//
//	ToMinorUnits("12.34")  -> 1234, nil
//	ToMinorUnits("12,345") -> 1235, nil (half-up on the third digit)
func ToMinorUnits(valor string) (int64, error) {
	s := strings.TrimSpace(valor)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.Round(2).Mul(centavosPorReal).IntPart(), nil
}

// ToDisplayAmount converts integer centavos back to the decimal display
// value with two implied fractional digits.
func ToDisplayAmount(centavos int64) float64 {
	return decimal.New(centavos, -2).InexactFloat64()
}
