// Package scenario runs configured adjustment plans against independent
// copies of a loan and collects the resulting schedules. It is the
// orchestration layer around the engine in internal/loan; the engine itself
// stays free of plans, logging and rendering concerns.
package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JYeeRen/early-payment/internal/loan"
)

// RateChange applies a new annual rate from a 1-indexed schedule period.
type RateChange struct {
	AnnualRate decimal.Decimal
	FromPeriod int
}

// Prepayment is an extra principal payment at an absolute period. With
// InstallmentMultiple set, Amount is a cap and the amount actually paid is
// the largest multiple of the loan's flat installment (as of the moment the
// payment is applied) that does not exceed it.
type Prepayment struct {
	Amount              decimal.Decimal
	Period              int
	ShortenTerm         bool
	InstallmentMultiple bool
}

// Plan is a named, fully resolved adjustment plan: recurrences expanded,
// amounts and rates parsed.
type Plan struct {
	Name        string
	RateChanges []RateChange
	Prepayments []Prepayment
}

// Result holds the outcome of one plan.
type Result struct {
	Name          string
	Schedule      loan.Schedule
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
	FinalPeriod   int
}

// Run executes every plan against a clone of the base loan. Rate changes are
// applied first, then prepayments, each in plan order. Prepayments that fall
// outside the (possibly already truncated) schedule are ignored by the
// engine, so recurring prepayments simply stop once a shortened loan ends.
func Run(logger *zap.Logger, base *loan.Loan, plans []Plan) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(plans))
	for _, plan := range plans {
		l := base.Clone()

		schedule, err := l.GenerateSchedule()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", plan.Name, err)
		}

		for _, rc := range plan.RateChanges {
			l.AdjustRate(rc.AnnualRate, rc.FromPeriod, schedule)
			logger.Debug(fmt.Sprintf("%s: adjusted rate to %s%% from period %d", plan.Name, rc.AnnualRate, rc.FromPeriod),
				zap.String("op", "scenario.Run"),
			)
		}

		for _, pp := range plan.Prepayments {
			amount := pp.Amount
			if pp.InstallmentMultiple {
				if l.FlatInstallment.IsZero() {
					continue
				}
				amount = pp.Amount.Div(l.FlatInstallment).Truncate(0).Mul(l.FlatInstallment)
			}

			before := len(schedule)
			l.MakeEarlyPayment(amount, pp.Period, pp.ShortenTerm, &schedule)
			logger.Debug(fmt.Sprintf("%s: early payment %s at period %d (schedule %d -> %d periods)",
				plan.Name, amount, pp.Period, before, len(schedule)),
				zap.String("op", "scenario.Run"),
			)
		}

		results = append(results, Result{
			Name:          plan.Name,
			Schedule:      schedule,
			TotalInterest: loan.TotalInterestPaid(schedule),
			TotalPaid:     loan.TotalPaid(schedule),
			FinalPeriod:   schedule[len(schedule)-1].Period,
		})
	}

	return results, nil
}
