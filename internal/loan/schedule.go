package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JYeeRen/early-payment/pkg/datetime"
	"github.com/JYeeRen/early-payment/pkg/mathutil"
)

// Payment is one period of an amortization schedule.
//
// RemainingPrincipal is the balance at period start, before this period's
// principal payment is applied. EarlyPayment records an extra principal
// amount applied at this period and is unset for ordinary periods.
type Payment struct {
	Period             int
	Interest           decimal.Decimal
	PrincipalPayment   decimal.Decimal
	RemainingPrincipal decimal.Decimal
	TotalPayment       decimal.Decimal
	InterestRate       decimal.Decimal
	PaymentDate        time.Time
	EarlyPayment       decimal.NullDecimal
}

// Schedule is an ordered sequence of payments, ascending by period. It is
// produced once by GenerateSchedule and thereafter mutated in place by
// AdjustRate and MakeEarlyPayment, which rewrite suffixes and may truncate.
// It never gains leading periods and is never reordered.
type Schedule []Payment

// GenerateSchedule produces the full schedule for the loan, one payment per
// period from ElapsedPeriods+1 through TotalPeriods, dated monthly from
// StartDate.
//
// TotalPayment is computed from the uncapped flat installment before the
// principal payment is capped at the remaining balance, so the final
// period's displayed total can exceed its interest plus principal. This
// mirrors the historical behavior and is pinned by tests; see DESIGN.md.
func (l *Loan) GenerateSchedule() (Schedule, error) {
	count := l.TotalPeriods - l.ElapsedPeriods
	schedule := make(Schedule, 0, count)

	remaining := l.Principal
	rate := mathutil.MonthlyRate(l.AnnualRate)
	date := l.StartDate

	for period := 1; period <= count; period++ {
		interest := mathutil.Round2(remaining.Mul(rate))
		total := mathutil.Round2(l.FlatInstallment.Add(interest))

		principal := l.FlatInstallment
		if remaining.LessThan(principal) {
			principal = remaining
		}

		schedule = append(schedule, Payment{
			Period:             l.ElapsedPeriods + period,
			Interest:           interest,
			PrincipalPayment:   principal,
			RemainingPrincipal: remaining,
			TotalPayment:       total,
			InterestRate:       l.AnnualRate,
			PaymentDate:        date,
		})

		remaining = remaining.Sub(principal)

		next, err := datetime.AdvanceMonth(date)
		if err != nil {
			return nil, fmt.Errorf("advancing payment date past period %d: %w", l.ElapsedPeriods+period, err)
		}
		date = next
	}

	return schedule, nil
}

// TotalInterestPaid sums the interest charged across the whole schedule.
func TotalInterestPaid(schedule Schedule) decimal.Decimal {
	total := decimal.Zero
	for _, p := range schedule {
		total = total.Add(p.Interest)
	}
	return total
}

// TotalPaid sums every amount paid over the schedule: the per-period totals
// plus any recorded early payments.
func TotalPaid(schedule Schedule) decimal.Decimal {
	total := decimal.Zero
	for _, p := range schedule {
		total = total.Add(p.TotalPayment)
		if p.EarlyPayment.Valid {
			total = total.Add(p.EarlyPayment.Decimal)
		}
	}
	return total
}

// TotalEarlyPayments sums the extra principal amounts recorded on the
// schedule.
func TotalEarlyPayments(schedule Schedule) decimal.Decimal {
	total := decimal.Zero
	for _, p := range schedule {
		if p.EarlyPayment.Valid {
			total = total.Add(p.EarlyPayment.Decimal)
		}
	}
	return total
}
