// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/JYeeRen/early-payment/pkg/constants"
)

// Configuration holds all configuration for early-payment.
type Configuration struct {
	Loan      LoanConfig    `yaml:"loan"`
	Scenarios []Scenario    `yaml:"scenarios,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoanConfig holds the contractual loan parameters. Monetary and rate values
// are strings so they parse into exact decimals rather than floats.
type LoanConfig struct {
	Principal      string `yaml:"principal"`
	AnnualRate     string `yaml:"annualRate"`
	ElapsedPeriods int    `yaml:"elapsedPeriods"`
	TotalPeriods   int    `yaml:"totalPeriods"`
	StartDate      string `yaml:"startDate"`
}

// Scenario is a named adjustment plan run against an independent copy of the
// loan: rate changes first, then early payments, each list in declared order.
type Scenario struct {
	Name          string         `yaml:"name"`
	RateChanges   []RateChange   `yaml:"rateChanges,omitempty"`
	EarlyPayments []EarlyPayment `yaml:"earlyPayments,omitempty"`
}

// RateChange applies a new annual rate from a 1-indexed schedule period.
type RateChange struct {
	AnnualRate string `yaml:"annualRate"`
	FromPeriod int    `yaml:"fromPeriod"`
}

// EarlyPayment is an extra principal payment at an absolute period. With
// Every > 0 it recurs every that many periods through Until (default: the
// contractual end). With InstallmentMultiple set, Amount acts as a cap and
// the amount actually paid is the largest multiple of the loan's current
// flat installment not exceeding it.
type EarlyPayment struct {
	Amount              string `yaml:"amount"`
	Period              int    `yaml:"period"`
	Strategy            string `yaml:"strategy"` // shortenTerm, reduceInstallment
	Every               int    `yaml:"every,omitempty"`
	Until               int    `yaml:"until,omitempty"`
	InstallmentMultiple bool   `yaml:"installmentMultiple,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for suspicious but non-fatal settings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios configured; only the base schedule will be produced")
	}

	remaining := c.Loan.TotalPeriods - c.Loan.ElapsedPeriods
	for _, scenario := range c.Scenarios {
		if len(scenario.RateChanges) == 0 && len(scenario.EarlyPayments) == 0 {
			warnings = append(warnings, fmt.Sprintf("scenario %q has no adjustments", scenario.Name))
		}
		for _, rc := range scenario.RateChanges {
			if rc.FromPeriod > remaining {
				warnings = append(warnings, fmt.Sprintf(
					"scenario %q: rate change at period %d starts beyond the schedule (%d periods) and will have no effect",
					scenario.Name, rc.FromPeriod, remaining))
			}
		}
		for _, ep := range scenario.EarlyPayments {
			if ep.Period <= c.Loan.ElapsedPeriods || ep.Period > c.Loan.TotalPeriods {
				warnings = append(warnings, fmt.Sprintf(
					"scenario %q: early payment at period %d is outside the schedule and will be ignored",
					scenario.Name, ep.Period))
			}
			if ep.Amount == "" || ep.Amount == "0" {
				warnings = append(warnings, fmt.Sprintf(
					"scenario %q: early payment at period %d has no amount", scenario.Name, ep.Period))
			}
			if ep.Strategy != constants.StrategyShortenTerm && ep.Strategy != constants.StrategyReduceInstallment {
				warnings = append(warnings, fmt.Sprintf(
					"scenario %q: early payment at period %d has unknown strategy %q",
					scenario.Name, ep.Period, ep.Strategy))
			}
		}
	}

	return warnings
}
