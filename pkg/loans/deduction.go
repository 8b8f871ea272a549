package loans

import (
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
)

// DeductionPolicy describes how mortgage interest reduces taxes. Interest on
// balances above Cap is only deductible pro rata.
type DeductionPolicy struct {
	Cap  float64 `json:"cap"`
	Rate float64 `json:"rate"`
}

// DefaultDeductionPolicy returns the policy used when none is configured.
func DefaultDeductionPolicy() DeductionPolicy {
	return DeductionPolicy{
		Cap:  constants.DefaultDeductionCap,
		Rate: constants.DefaultDeductionRate,
	}
}

// DeductibleRatio returns the share of a year's interest that is deductible
// given the balance at the end of that year.
func (p DeductionPolicy) DeductibleRatio(yearEndBalance float64) float64 {
	if yearEndBalance <= 0 {
		return 1
	}
	return mathutil.Min(p.Cap/yearEndBalance, 1)
}

// YearSummary aggregates one year of an amortization schedule.
type YearSummary struct {
	Year                int     `json:"year"`
	TotalPayment        float64 `json:"totalPayment"`
	TotalPrincipal      float64 `json:"totalPrincipal"`
	TotalInterest       float64 `json:"totalInterest"`
	MinRemainingBalance float64 `json:"minRemainingBalance"`
	DeductibleRatio     float64 `json:"deductibleRatio"`
	DeductibleInterest  float64 `json:"deductibleInterest"`
	TaxDeduction        float64 `json:"taxDeduction"`
}

// SummarizeYears groups a schedule by year and estimates the interest tax
// deduction for each year. The schedule must be ordered by period.
func SummarizeYears(schedule []Payment, policy DeductionPolicy) []YearSummary {
	var summaries []YearSummary
	for _, payment := range schedule {
		if len(summaries) == 0 || summaries[len(summaries)-1].Year != payment.Year {
			summaries = append(summaries, YearSummary{
				Year:                payment.Year,
				MinRemainingBalance: payment.RemainingPrincipal,
			})
		}
		current := &summaries[len(summaries)-1]
		current.TotalPayment += payment.Payment
		current.TotalPrincipal += payment.Principal
		current.TotalInterest += payment.Interest
		if payment.RemainingPrincipal < current.MinRemainingBalance {
			current.MinRemainingBalance = payment.RemainingPrincipal
		}
	}

	for i := range summaries {
		summary := &summaries[i]
		summary.DeductibleRatio = policy.DeductibleRatio(summary.MinRemainingBalance)
		summary.DeductibleInterest = summary.TotalInterest * summary.DeductibleRatio
		summary.TaxDeduction = summary.DeductibleInterest * policy.Rate
	}

	return summaries
}
