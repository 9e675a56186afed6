// Package loan implements fixed-principal (equal principal) installment
// loans: amortization schedule generation, mid-schedule interest rate
// changes, and early principal payments under a shorten-term or
// reduce-installment strategy.
package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JYeeRen/early-payment/pkg/mathutil"
)

// Loan holds the contractual parameters of a fixed-principal loan together
// with the flat principal installment derived from them.
//
// FlatInstallment always reflects the currently active plan: it is derived
// at construction and recomputed whenever a reduce-installment early payment
// changes the plan. AnnualRate likewise tracks the most recent rate
// adjustment.
type Loan struct {
	Principal       decimal.Decimal
	AnnualRate      decimal.Decimal
	ElapsedPeriods  int
	TotalPeriods    int
	StartDate       time.Time
	FlatInstallment decimal.Decimal
}

// New validates the loan parameters and derives the flat principal
// installment paid each period. AnnualRate is in percent units (4.2 means
// 4.2%). ElapsedPeriods counts periods already paid before the schedule
// starts; the generated schedule covers the remaining
// TotalPeriods-ElapsedPeriods periods beginning at startDate.
func New(principal, annualRate decimal.Decimal, elapsedPeriods, totalPeriods int, startDate time.Time) (*Loan, error) {
	if elapsedPeriods < 0 {
		return nil, fmt.Errorf("elapsed periods must not be negative, got %d", elapsedPeriods)
	}
	if totalPeriods <= elapsedPeriods {
		return nil, fmt.Errorf("total periods (%d) must exceed elapsed periods (%d)", totalPeriods, elapsedPeriods)
	}
	if !principal.IsPositive() {
		return nil, fmt.Errorf("principal must be positive, got %s", principal)
	}
	if annualRate.IsNegative() {
		return nil, fmt.Errorf("annual rate must not be negative, got %s", annualRate)
	}

	remaining := int64(totalPeriods - elapsedPeriods)
	return &Loan{
		Principal:       principal,
		AnnualRate:      annualRate,
		ElapsedPeriods:  elapsedPeriods,
		TotalPeriods:    totalPeriods,
		StartDate:       startDate,
		FlatInstallment: mathutil.Round2(principal.Div(decimal.NewFromInt(remaining))),
	}, nil
}

// Clone returns an independent copy of the loan, for running alternative
// repayment plans side by side.
func (l *Loan) Clone() *Loan {
	c := *l
	return &c
}
