package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func referenceLoanConfig() LoanConfig {
	return LoanConfig{
		Principal:      "536714.20",
		AnnualRate:     "4.2",
		ElapsedPeriods: 57,
		TotalPeriods:   288,
		StartDate:      "2024-10-19",
	}
}

func TestToLoan(t *testing.T) {
	cfg := referenceLoanConfig()
	l, err := cfg.ToLoan()
	if err != nil {
		t.Fatalf("ToLoan() unexpected error: %v", err)
	}
	if !l.FlatInstallment.Equal(decimal.RequireFromString("2323.44")) {
		t.Errorf("FlatInstallment = %s, expected 2323.44", l.FlatInstallment)
	}
	if l.StartDate.Day() != 19 {
		t.Errorf("StartDate day = %d, expected 19", l.StartDate.Day())
	}
}

func TestToLoanRejectsBadLiterals(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LoanConfig)
	}{
		{
			name:   "Unparseable principal",
			mutate: func(c *LoanConfig) { c.Principal = "five hundred" },
		},
		{
			name:   "Unparseable rate",
			mutate: func(c *LoanConfig) { c.AnnualRate = "4,2" },
		},
		{
			name:   "Unparseable date",
			mutate: func(c *LoanConfig) { c.StartDate = "19/10/2024" },
		},
		{
			name:   "Zero-length term",
			mutate: func(c *LoanConfig) { c.TotalPeriods = 57 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceLoanConfig()
			tt.mutate(&cfg)
			if _, err := cfg.ToLoan(); err == nil {
				t.Error("ToLoan() expected error, got nil")
			}
		})
	}
}

func TestToPlansExpandsRecurrence(t *testing.T) {
	conf := Configuration{
		Loan: referenceLoanConfig(),
		Scenarios: []Scenario{
			{
				Name: "recurring",
				EarlyPayments: []EarlyPayment{
					{Amount: "10000", Period: 58, Strategy: "shortenTerm", Every: 3, Until: 66},
				},
			},
		},
	}

	plans, err := conf.ToPlans()
	if err != nil {
		t.Fatalf("ToPlans() unexpected error: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("len(plans) = %d, expected 1", len(plans))
	}

	expected := []int{58, 61, 64}
	if len(plans[0].Prepayments) != len(expected) {
		t.Fatalf("len(Prepayments) = %d, expected %d", len(plans[0].Prepayments), len(expected))
	}
	for i, period := range expected {
		pp := plans[0].Prepayments[i]
		if pp.Period != period {
			t.Errorf("Prepayments[%d].Period = %d, expected %d", i, pp.Period, period)
		}
		if !pp.ShortenTerm {
			t.Errorf("Prepayments[%d].ShortenTerm = false, expected true", i)
		}
	}
}

func TestToPlansRecurrenceDefaultsToTerm(t *testing.T) {
	conf := Configuration{
		Loan: referenceLoanConfig(),
		Scenarios: []Scenario{
			{
				Name: "open-ended",
				EarlyPayments: []EarlyPayment{
					{Amount: "10000", Period: 280, Strategy: "reduceInstallment", Every: 6},
				},
			},
		},
	}

	plans, err := conf.ToPlans()
	if err != nil {
		t.Fatalf("ToPlans() unexpected error: %v", err)
	}
	// 280 and 286, capped by the 288-period term.
	if len(plans[0].Prepayments) != 2 {
		t.Fatalf("len(Prepayments) = %d, expected 2", len(plans[0].Prepayments))
	}
	if plans[0].Prepayments[1].Period != 286 {
		t.Errorf("Prepayments[1].Period = %d, expected 286", plans[0].Prepayments[1].Period)
	}
	if plans[0].Prepayments[0].ShortenTerm {
		t.Error("Prepayments[0].ShortenTerm = true, expected false for reduceInstallment")
	}
}

func TestToPlansErrors(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
	}{
		{
			name: "Bad rate literal",
			scenario: Scenario{
				Name:        "bad-rate",
				RateChanges: []RateChange{{AnnualRate: "three-ish", FromPeriod: 2}},
			},
		},
		{
			name: "Bad amount literal",
			scenario: Scenario{
				Name:          "bad-amount",
				EarlyPayments: []EarlyPayment{{Amount: "lots", Period: 60, Strategy: "shortenTerm"}},
			},
		},
		{
			name: "Unknown strategy",
			scenario: Scenario{
				Name:          "bad-strategy",
				EarlyPayments: []EarlyPayment{{Amount: "100", Period: 60, Strategy: "balloon"}},
			},
		},
		{
			name: "Recurrence ends before it starts",
			scenario: Scenario{
				Name:          "bad-recurrence",
				EarlyPayments: []EarlyPayment{{Amount: "100", Period: 60, Strategy: "shortenTerm", Every: 3, Until: 59}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{
				Loan:      referenceLoanConfig(),
				Scenarios: []Scenario{tt.scenario},
			}
			if _, err := conf.ToPlans(); err == nil {
				t.Error("ToPlans() expected error, got nil")
			}
		})
	}
}

func TestToPlansEmptyScenarios(t *testing.T) {
	conf := Configuration{Loan: referenceLoanConfig()}
	plans, err := conf.ToPlans()
	if err != nil {
		t.Fatalf("ToPlans() unexpected error: %v", err)
	}
	if len(plans) != 1 || plans[0].Name != "schedule" {
		t.Errorf("plans = %+v, expected a single default plan named schedule", plans)
	}
}
