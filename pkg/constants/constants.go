// Package constants provides shared constants for the mortgage-forecast application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// ProjectionMonths is the fixed horizon of a wealth projection (30 years)
	ProjectionMonths = 360

	// DefaultTermYears is the loan term used when none is configured
	DefaultTermYears = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DisplayPlaces is the number of decimal places shown for currency values
	DisplayPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Mortgage interest deduction defaults
const (
	// DefaultDeductionCap is the loan balance above which interest is only
	// partially deductible
	DefaultDeductionCap = 750000.0

	// DefaultDeductionRate is the marginal tax rate applied to deductible interest
	DefaultDeductionRate = 0.34
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Run modes for the CLI
const (
	// ModeSchedule prints the amortization schedule for the configured mortgage
	ModeSchedule = "schedule"

	// ModeYearly prints the yearly interest and tax deduction summary
	ModeYearly = "yearly"

	// ModeCompare prints the wealth projections for the configured houses
	ModeCompare = "compare"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// BalanceDriftTolerance is the largest final balance accepted as paid off
	BalanceDriftTolerance = 0.05
)
