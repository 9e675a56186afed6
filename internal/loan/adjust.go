package loan

import (
	"github.com/shopspring/decimal"

	"github.com/JYeeRen/early-payment/pkg/mathutil"
)

// AdjustRate applies a new annual rate to every payment from the 1-indexed
// fromPeriod (counted within this schedule, inclusive) through the end.
// Principal payments and balances are inherited from the prior plan; only
// the recorded rate, interest and total change. The loan's own rate is
// updated for future generation. A pivot outside the schedule leaves the
// schedule untouched.
func (l *Loan) AdjustRate(newRate decimal.Decimal, fromPeriod int, schedule Schedule) {
	l.AnnualRate = newRate

	if fromPeriod < 1 {
		return
	}

	rate := mathutil.MonthlyRate(newRate)
	for i := fromPeriod - 1; i < len(schedule); i++ {
		p := &schedule[i]
		p.InterestRate = newRate
		p.Interest = mathutil.Round2(p.RemainingPrincipal.Mul(rate))
		p.TotalPayment = p.PrincipalPayment.Add(p.Interest)
	}
}

// MakeEarlyPayment applies an extra principal payment at the given absolute
// period and recomputes the schedule from that period on, each payment at
// its own recorded rate.
//
// With shortenTerm the flat installment is kept and the schedule is
// truncated as soon as the balance reaches zero; otherwise the contractual
// end is kept and the loan's flat installment is recomputed over the
// remaining periods. A period outside the schedule, or an amount exceeding
// the balance at the target period, is ignored and the schedule is returned
// unchanged; both policies are deliberate and covered by tests.
func (l *Loan) MakeEarlyPayment(extraPayment decimal.Decimal, period int, shortenTerm bool, schedule *Schedule) {
	s := *schedule

	idx := period - l.ElapsedPeriods - 1
	if idx < 0 || idx >= len(s) {
		return
	}

	remaining := mathutil.Round2(s[idx].RemainingPrincipal.Sub(extraPayment))
	if remaining.IsNegative() {
		return
	}

	s[idx].EarlyPayment = decimal.NullDecimal{Decimal: extraPayment, Valid: true}

	if shortenTerm {
		for i := idx; i < len(s); i++ {
			p := &s[i]
			interest := mathutil.Round2(remaining.Mul(mathutil.MonthlyRate(p.InterestRate)))

			p.RemainingPrincipal = remaining
			if remaining.LessThan(p.PrincipalPayment) {
				p.PrincipalPayment = remaining
			}
			p.Interest = interest
			p.TotalPayment = mathutil.Round2(p.PrincipalPayment.Add(interest))

			remaining = remaining.Sub(p.PrincipalPayment)

			if remaining.IsZero() {
				*schedule = s[:i+1]
				break
			}
		}
		return
	}

	// Periods from the target period through the contractual end, inclusive.
	remainingPeriods := int64(l.TotalPeriods - s[idx].Period + 1)
	l.FlatInstallment = mathutil.Round2(remaining.Div(decimal.NewFromInt(remainingPeriods)))

	for i := idx; i < len(s); i++ {
		p := &s[i]
		interest := mathutil.Round2(remaining.Mul(mathutil.MonthlyRate(p.InterestRate)))

		p.RemainingPrincipal = remaining
		p.PrincipalPayment = l.FlatInstallment
		if remaining.LessThan(p.PrincipalPayment) {
			p.PrincipalPayment = remaining
		}
		p.Interest = interest
		p.TotalPayment = mathutil.Round2(p.PrincipalPayment.Add(interest))

		remaining = remaining.Sub(p.PrincipalPayment)
	}
}
