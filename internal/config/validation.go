package config

import "github.com/iwvelando/mortgage-forecast/pkg/validation"

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		Mortgage: validation.LoanConfig{
			Name:        conf.Mortgage.Name,
			HomeValue:   conf.Mortgage.HomeValue,
			DownPayment: conf.Mortgage.DownPayment,
			Rate:        conf.Mortgage.InterestRate,
		},
		Comparison: validation.ComparisonConfig{
			MonthlyIncome: conf.Comparison.MonthlyIncome,
		},
	}

	for _, house := range conf.Comparison.Houses {
		validator.Comparison.Houses = append(validator.Comparison.Houses, validation.HouseConfig{
			LoanConfig: validation.LoanConfig{
				Name:        house.Name,
				HomeValue:   house.HomeValue,
				DownPayment: house.DownPayment,
				Rate:        house.InterestRate,
			},
			MonthlyExpenses: house.MonthlyExpenses,
		})
	}

	return validator.ValidateAll()
}
