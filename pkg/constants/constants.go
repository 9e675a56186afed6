// Package constants provides shared constants for the early-payment application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// CurrencyDecimalPlaces is the number of decimal places monetary values
	// carry at every computation step
	CurrencyDecimalPlaces = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// YAML configs (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Early payment strategy names as used in configuration files.
const (
	// StrategyShortenTerm keeps the flat installment and ends the loan sooner
	StrategyShortenTerm = "shortenTerm"

	// StrategyReduceInstallment keeps the term and lowers the flat installment
	StrategyReduceInstallment = "reduceInstallment"
)
