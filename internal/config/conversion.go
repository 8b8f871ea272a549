package config

import (
	"github.com/iwvelando/mortgage-forecast/pkg/finance"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
)

// LoanTerms converts the configured mortgage into loan terms.
func (m Mortgage) LoanTerms() loans.LoanTerms {
	return loans.LoanTerms{
		Principal:         m.HomeValue - m.DownPayment,
		AnnualRatePercent: m.InterestRate,
		TermMonths:        loans.TermMonthsFromYears(m.TermYears),
	}
}

// DeductionPolicy converts the tax settings into a deduction policy.
func (t TaxConfig) DeductionPolicy() loans.DeductionPolicy {
	return loans.DeductionPolicy{
		Cap:  t.DeductionCap,
		Rate: t.DeductionRate,
	}
}

// WealthInputs combines a house with the shared household parameters.
func (c Comparison) WealthInputs(house House) finance.WealthInputs {
	return finance.WealthInputs{
		HomeValue:                     house.HomeValue,
		DownPayment:                   house.DownPayment,
		MonthlyIncome:                 c.MonthlyIncome,
		MonthlyExpenses:               house.MonthlyExpenses,
		AnnualInvestmentReturnPercent: c.InvestmentReturn,
		AnnualAppreciationPercent:     house.Appreciation,
		AnnualMortgageRatePercent:     house.InterestRate,
	}
}
