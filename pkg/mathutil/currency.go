// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"github.com/shopspring/decimal"

	"github.com/JYeeRen/early-payment/pkg/constants"
)

// Round2 rounds a value to two decimals, i.e. to represent real currency.
// Uses banker's rounding, and is applied at the point of computation rather
// than at display time so downstream values inherit the rounded figures.
func Round2(val decimal.Decimal) decimal.Decimal {
	return val.RoundBank(constants.CurrencyDecimalPlaces)
}

// MonthlyRate converts a nominal annual percentage rate (e.g. 4.2 for 4.2%)
// to the flat monthly fraction used for interest accrual.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.
		Div(decimal.NewFromInt(constants.MonthsPerYear)).
		Div(decimal.NewFromInt(constants.PercentageMultiplier))
}
