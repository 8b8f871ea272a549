package config

import (
	"testing"
)

func TestMortgageLoanTerms(t *testing.T) {
	mortgage := Mortgage{HomeValue: 1550000, DownPayment: 330000, InterestRate: 6.125, TermYears: 30}

	terms := mortgage.LoanTerms()
	if terms.Principal != 1220000 {
		t.Errorf("Principal = %v, expected 1220000", terms.Principal)
	}
	if terms.AnnualRatePercent != 6.125 {
		t.Errorf("AnnualRatePercent = %v, expected 6.125", terms.AnnualRatePercent)
	}
	if terms.TermMonths != 360 {
		t.Errorf("TermMonths = %d, expected 360", terms.TermMonths)
	}
}

func TestTaxDeductionPolicy(t *testing.T) {
	policy := TaxConfig{DeductionCap: 500000, DeductionRate: 0.24}.DeductionPolicy()
	if policy.Cap != 500000 || policy.Rate != 0.24 {
		t.Errorf("DeductionPolicy() = %+v", policy)
	}
}

func TestComparisonWealthInputs(t *testing.T) {
	comparison := Comparison{MonthlyIncome: 20000, InvestmentReturn: 7}
	house := House{Name: "house 1", HomeValue: 1500000, DownPayment: 300000, Appreciation: 5, InterestRate: 6.125, MonthlyExpenses: 7000}

	in := comparison.WealthInputs(house)
	if in.HomeValue != 1500000 || in.DownPayment != 300000 {
		t.Errorf("home values not carried over: %+v", in)
	}
	if in.MonthlyIncome != 20000 || in.AnnualInvestmentReturnPercent != 7 {
		t.Errorf("shared household values not carried over: %+v", in)
	}
	if in.AnnualAppreciationPercent != 5 || in.AnnualMortgageRatePercent != 6.125 || in.MonthlyExpenses != 7000 {
		t.Errorf("house values not carried over: %+v", in)
	}
	if in.LoanAmount() != 1200000 {
		t.Errorf("LoanAmount() = %v, expected 1200000", in.LoanAmount())
	}
}
