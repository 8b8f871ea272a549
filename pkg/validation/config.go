package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
)

// highRatePercent is the annual rate above which a mortgage rate is flagged
// as a likely typo.
const highRatePercent = 25.0

// ValidateLoan returns warnings for loan parameters that compute but are
// probably not what the user meant. Each warning starts with label verbatim.
func ValidateLoan(label string, homeValue, downPayment, ratePercent float64) []string {
	var warnings []string

	if homeValue > 0 && downPayment >= homeValue {
		warnings = append(warnings, fmt.Sprintf("%s down payment covers the full home value; there is no loan to amortize", label))
	}
	if ratePercent == 0 {
		warnings = append(warnings, fmt.Sprintf("%s has a zero interest rate; payments amortize linearly", label))
	}
	if ratePercent > highRatePercent {
		warnings = append(warnings, fmt.Sprintf("%s interest rate %.3f%% is unusually high; rates are annual percentages", label, ratePercent))
	}

	return warnings
}

// ValidateSurplus warns when a scenario's income does not cover the mortgage
// payment and expenses, so the invested portfolio goes negative.
func ValidateSurplus(label string, loanAmount, ratePercent, monthlyIncome, monthlyExpenses float64) (string, error) {
	payment, err := loans.CalculateMonthlyPayment(loanAmount, ratePercent, constants.ProjectionMonths)
	if err != nil {
		return "", err
	}

	surplus := monthlyIncome - payment - monthlyExpenses
	if surplus < 0 {
		return fmt.Sprintf("%s runs a monthly deficit of %s; the invested portfolio will be negative", label, format.WholeCurrency(-surplus)), nil
	}
	return "", nil
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Mortgage   LoanConfig
	Comparison ComparisonConfig
}

type LoanConfig struct {
	Name        string
	HomeValue   float64
	DownPayment float64
	Rate        float64
}

type ComparisonConfig struct {
	MonthlyIncome float64
	Houses        []HouseConfig
}

type HouseConfig struct {
	LoanConfig
	MonthlyExpenses float64
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if cv.Mortgage.HomeValue > 0 {
		warnings = append(warnings, ValidateLoan(fmt.Sprintf("Mortgage '%s'", cv.Mortgage.Name),
			cv.Mortgage.HomeValue, cv.Mortgage.DownPayment, cv.Mortgage.Rate)...)
	}

	if len(cv.Comparison.Houses) == 1 {
		warnings = append(warnings, "Comparison has a single house; no net worth difference will be computed")
	}

	for _, house := range cv.Comparison.Houses {
		label := fmt.Sprintf("House '%s'", house.Name)
		warnings = append(warnings, ValidateLoan(label, house.HomeValue, house.DownPayment, house.Rate)...)

		warning, err := ValidateSurplus(label, house.HomeValue-house.DownPayment, house.Rate,
			cv.Comparison.MonthlyIncome, house.MonthlyExpenses)
		if err == nil && warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
