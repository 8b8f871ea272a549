package validation

import (
	"strings"
	"testing"
)

func TestValidateLoan(t *testing.T) {
	tests := []struct {
		name            string
		homeValue       float64
		downPayment     float64
		rate            float64
		expectWarnCount int
	}{
		{"Typical mortgage", 1500000, 300000, 6.125, 0},
		{"Paid in cash", 500000, 500000, 6.0, 1},
		{"Zero interest", 400000, 80000, 0, 1},
		{"Rate entered as basis points", 400000, 80000, 612.5, 1},
		{"Cash purchase at zero rate", 400000, 400000, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateLoan("Test", tt.homeValue, tt.downPayment, tt.rate)
			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateLoan() returned %d warnings, expected %d: %v", len(warnings), tt.expectWarnCount, warnings)
			}
		})
	}
}

func TestValidateSurplus(t *testing.T) {
	tests := []struct {
		name       string
		income     float64
		expenses   float64
		expectWarn bool
		expectErr  bool
	}{
		{"Comfortable surplus", 20000, 7000, false, false},
		{"Deficit", 10000, 7000, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, err := ValidateSurplus("House", 1200000, 6.125, tt.income, tt.expenses)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ValidateSurplus() error = %v", err)
			}
			if (warning != "") != tt.expectWarn {
				t.Errorf("ValidateSurplus() warning = %q, expectWarn %v", warning, tt.expectWarn)
			}
		})
	}

	warning, _ := ValidateSurplus("House", 1200000, 6.125, 10000, 7000)
	if !strings.Contains(warning, "$4,291") {
		t.Errorf("ValidateSurplus() warning = %q, expected the deficit in whole dollars", warning)
	}

	if _, err := ValidateSurplus("House", -1, 6, 1000, 0); err == nil {
		t.Error("ValidateSurplus() expected error for a negative loan amount")
	}
}

func TestConfigValidator_ValidateAll(t *testing.T) {
	tests := []struct {
		name            string
		validator       ConfigValidator
		expectWarnCount int
	}{
		{
			name: "Valid configuration",
			validator: ConfigValidator{
				Mortgage: LoanConfig{Name: "Home", HomeValue: 1550000, DownPayment: 330000, Rate: 6.125},
				Comparison: ComparisonConfig{
					MonthlyIncome: 20000,
					Houses: []HouseConfig{
						{LoanConfig: LoanConfig{Name: "House 1", HomeValue: 1500000, DownPayment: 300000, Rate: 6.125}, MonthlyExpenses: 7000},
						{LoanConfig: LoanConfig{Name: "House 2", HomeValue: 1200000, DownPayment: 300000, Rate: 6.125}, MonthlyExpenses: 7000},
					},
				},
			},
			expectWarnCount: 0,
		},
		{
			name: "Configuration with warnings",
			validator: ConfigValidator{
				Mortgage: LoanConfig{Name: "Home", HomeValue: 500000, DownPayment: 100000, Rate: 0},
				Comparison: ComparisonConfig{
					MonthlyIncome: 9000,
					Houses: []HouseConfig{
						{LoanConfig: LoanConfig{Name: "House 1", HomeValue: 1500000, DownPayment: 300000, Rate: 6.125}, MonthlyExpenses: 7000},
					},
				},
			},
			expectWarnCount: 3, // zero rate, single house, deficit
		},
		{
			name:            "Empty configuration",
			validator:       ConfigValidator{},
			expectWarnCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.validator.ValidateAll()

			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateAll() returned %d warnings, expected %d", len(warnings), tt.expectWarnCount)
			}

			for i, warning := range warnings {
				t.Logf("Warning %d: %s", i+1, warning)
			}
		})
	}
}

func TestValidateAllNamesScenario(t *testing.T) {
	validator := ConfigValidator{
		Comparison: ComparisonConfig{
			MonthlyIncome: 1000,
			Houses: []HouseConfig{
				{LoanConfig: LoanConfig{Name: "Condo", HomeValue: 400000, DownPayment: 80000, Rate: 6}, MonthlyExpenses: 500},
				{LoanConfig: LoanConfig{Name: "Cabin", HomeValue: 200000, DownPayment: 200000, Rate: 6}, MonthlyExpenses: 500},
			},
		},
	}

	warnings := validator.ValidateAll()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "Condo") || !strings.Contains(warnings[0], "deficit") {
		t.Errorf("expected a deficit warning for Condo, got %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "Cabin") {
		t.Errorf("expected a cash purchase warning for Cabin, got %q", warnings[1])
	}
}

func TestValidateAllLabels(t *testing.T) {
	validator := ConfigValidator{
		Mortgage: LoanConfig{Name: "primary", HomeValue: 300000, DownPayment: 300000, Rate: 0},
		Comparison: ComparisonConfig{
			MonthlyIncome: 100,
			Houses: []HouseConfig{
				{LoanConfig: LoanConfig{Name: "Condo", HomeValue: 400000, DownPayment: 80000, Rate: 6}, MonthlyExpenses: 500},
			},
		},
	}

	warnings := validator.ValidateAll()
	expectedPrefixes := []string{
		"Mortgage 'primary' down payment",
		"Mortgage 'primary' has a zero interest rate",
		"Comparison has a single house",
		"House 'Condo' runs a monthly deficit",
	}
	if len(warnings) != len(expectedPrefixes) {
		t.Fatalf("expected %d warnings, got %d: %v", len(expectedPrefixes), len(warnings), warnings)
	}
	for i, prefix := range expectedPrefixes {
		if !strings.HasPrefix(warnings[i], prefix) {
			t.Errorf("warning %d = %q, expected prefix %q", i, warnings[i], prefix)
		}
		if strings.Contains(warnings[i], "''") {
			t.Errorf("warning %d = %q has a doubled quote", i, warnings[i])
		}
	}
}
