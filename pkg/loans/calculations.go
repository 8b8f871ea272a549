// Package loans provides fixed-rate loan payment and amortization utilities.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
)

var (
	// ErrInvalidInput indicates loan parameters that cannot describe a loan.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericDegenerate indicates the annuity arithmetic did not produce a
	// finite payment for otherwise valid parameters.
	ErrNumericDegenerate = errors.New("numerically degenerate")
)

// LoanTerms holds the parameters of a fixed-rate, fully amortizing loan.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermMonths        int     `json:"termMonths"`
}

// Validate rejects terms that cannot be amortized.
func (l LoanTerms) Validate() error {
	if !mathutil.IsFinite(l.Principal) || l.Principal < 0 {
		return fmt.Errorf("%w: principal must be a non-negative amount, got %v", ErrInvalidInput, l.Principal)
	}
	if l.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be at least one month, got %d", ErrInvalidInput, l.TermMonths)
	}
	if !mathutil.IsFinite(l.AnnualRatePercent) || l.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: annual rate must be a non-negative percentage, got %v", ErrInvalidInput, l.AnnualRatePercent)
	}
	return nil
}

// MonthlyRate returns the periodic rate for the terms.
func (l LoanTerms) MonthlyRate() float64 {
	return MonthlyRate(l.AnnualRatePercent)
}

// MonthlyRate converts an annual percentage rate into the monthly periodic rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return mathutil.PercentToMonthlyRate(annualRatePercent)
}

// CalculateMonthlyPayment calculates the level monthly payment for a loan using
// the standard annuity formula. A zero rate amortizes linearly.
func CalculateMonthlyPayment(principal, annualRatePercent float64, termMonths int) (float64, error) {
	terms := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermMonths: termMonths}
	if err := terms.Validate(); err != nil {
		return 0, err
	}

	periodicInterestRate := terms.MonthlyRate()
	growthMinusOne := compoundGrowthMinusOne(periodicInterestRate, termMonths)
	if growthMinusOne == 0 {
		return principal / float64(termMonths), nil
	}

	payment := principal * periodicInterestRate * (growthMinusOne + 1.00) / growthMinusOne
	if !mathutil.IsFinite(payment) {
		return 0, fmt.Errorf("%w: payment for principal %v at %v%% over %d months is not finite",
			ErrNumericDegenerate, principal, annualRatePercent, termMonths)
	}
	return payment, nil
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * MonthlyRate(annualRatePercent)
}

// RemainingBalance returns the balance still owed after month payments,
// computed directly from the annuity closed form rather than by folding the
// schedule. The result is clamped at zero.
func RemainingBalance(loanAmount, annualRatePercent, payment float64, month int) float64 {
	if month <= 0 {
		return loanAmount
	}

	rate := MonthlyRate(annualRatePercent)
	growthMinusOne := compoundGrowthMinusOne(rate, month)
	var balance float64
	if growthMinusOne == 0 {
		balance = loanAmount - payment*float64(month)
	} else {
		balance = loanAmount + (loanAmount*rate-payment)*growthMinusOne/rate
	}
	return mathutil.Max(balance, 0)
}

// compoundGrowthMinusOne returns (1+rate)^periods - 1. Going through Log1p and
// Expm1 keeps the result accurate for rates too small to survive 1+rate.
func compoundGrowthMinusOne(rate float64, periods int) float64 {
	if rate == 0 {
		return 0
	}
	return math.Expm1(float64(periods) * math.Log1p(rate))
}

// TotalPayments returns the sum of all level payments over the term.
func TotalPayments(payment float64, termMonths int) float64 {
	return payment * float64(termMonths)
}

// TotalInterest returns the interest paid over the full term.
func TotalInterest(payment, principal float64, termMonths int) float64 {
	return TotalPayments(payment, termMonths) - principal
}

// Summary holds the headline figures for a loan.
type Summary struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayments  float64 `json:"totalPayments"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Summarize computes the headline payment figures for the terms.
func Summarize(terms LoanTerms) (Summary, error) {
	payment, err := CalculateMonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		MonthlyPayment: payment,
		TotalPayments:  TotalPayments(payment, terms.TermMonths),
		TotalInterest:  TotalInterest(payment, terms.Principal, terms.TermMonths),
	}, nil
}

// TermMonthsFromYears converts a term in years into payment periods.
func TermMonthsFromYears(years int) int {
	return years * constants.MonthsPerYear
}
