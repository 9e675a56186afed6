package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JYeeRen/early-payment/internal/loan"
	"github.com/JYeeRen/early-payment/internal/scenario"
	"github.com/JYeeRen/early-payment/pkg/constants"
)

// ToLoan builds the engine's loan from the configured parameters. Monetary
// and rate literals that do not parse, and an empty term, are construction
// errors; they are never silently coerced.
func (c *LoanConfig) ToLoan() (*loan.Loan, error) {
	principal, err := decimal.NewFromString(c.Principal)
	if err != nil {
		return nil, fmt.Errorf("parsing principal %q: %w", c.Principal, err)
	}

	annualRate, err := decimal.NewFromString(c.AnnualRate)
	if err != nil {
		return nil, fmt.Errorf("parsing annual rate %q: %w", c.AnnualRate, err)
	}

	startDate, err := time.Parse(constants.DateTimeLayout, c.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", c.StartDate, err)
	}

	return loan.New(principal, annualRate, c.ElapsedPeriods, c.TotalPeriods, startDate)
}

// ToPlans resolves the configured scenarios into executable plans: rates and
// amounts parsed into decimals, early payment recurrences expanded into
// concrete periods. When no scenarios are configured a single empty plan is
// returned so the base schedule is still produced.
func (c *Configuration) ToPlans() ([]scenario.Plan, error) {
	if len(c.Scenarios) == 0 {
		return []scenario.Plan{{Name: "schedule"}}, nil
	}

	plans := make([]scenario.Plan, 0, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		plan := scenario.Plan{Name: sc.Name}

		for _, rc := range sc.RateChanges {
			rate, err := decimal.NewFromString(rc.AnnualRate)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: parsing rate %q: %w", sc.Name, rc.AnnualRate, err)
			}
			plan.RateChanges = append(plan.RateChanges, scenario.RateChange{
				AnnualRate: rate,
				FromPeriod: rc.FromPeriod,
			})
		}

		for _, ep := range sc.EarlyPayments {
			prepayments, err := c.expandEarlyPayment(sc.Name, ep)
			if err != nil {
				return nil, err
			}
			plan.Prepayments = append(plan.Prepayments, prepayments...)
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// expandEarlyPayment turns one configured early payment into one prepayment
// per occurrence, expanding the optional recurrence.
func (c *Configuration) expandEarlyPayment(scenarioName string, ep EarlyPayment) ([]scenario.Prepayment, error) {
	amount, err := decimal.NewFromString(ep.Amount)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: parsing early payment amount %q: %w", scenarioName, ep.Amount, err)
	}

	var shortenTerm bool
	switch ep.Strategy {
	case constants.StrategyShortenTerm:
		shortenTerm = true
	case constants.StrategyReduceInstallment:
		shortenTerm = false
	default:
		return nil, fmt.Errorf("scenario %q: unknown early payment strategy %q", scenarioName, ep.Strategy)
	}

	base := scenario.Prepayment{
		Amount:              amount,
		Period:              ep.Period,
		ShortenTerm:         shortenTerm,
		InstallmentMultiple: ep.InstallmentMultiple,
	}

	if ep.Every <= 0 {
		return []scenario.Prepayment{base}, nil
	}

	until := ep.Until
	if until == 0 {
		until = c.Loan.TotalPeriods
	}
	if until < ep.Period {
		return nil, fmt.Errorf("scenario %q: early payment recurrence ends at period %d before it starts at %d",
			scenarioName, until, ep.Period)
	}

	var prepayments []scenario.Prepayment
	for period := ep.Period; period <= until; period += ep.Every {
		occurrence := base
		occurrence.Period = period
		prepayments = append(prepayments, occurrence)
	}
	return prepayments, nil
}
