package finance

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"go.uber.org/zap"
)

func defaultInputs() WealthInputs {
	return WealthInputs{
		HomeValue:                     1500000,
		DownPayment:                   300000,
		MonthlyIncome:                 20000,
		MonthlyExpenses:               7000,
		AnnualInvestmentReturnPercent: 7.0,
		AnnualAppreciationPercent:     5.0,
		AnnualMortgageRatePercent:     6.125,
	}
}

func TestProjectShape(t *testing.T) {
	records, err := NewWealthProjector(zap.NewNop()).Project(defaultInputs())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if len(records) != 360 {
		t.Fatalf("Project() returned %d months, expected 360", len(records))
	}

	for i, r := range records {
		if r.Period != i+1 {
			t.Errorf("record %d has period %d", i, r.Period)
		}
		if r.Year != (r.Period+11)/12 {
			t.Errorf("period %d: year %d", r.Period, r.Year)
		}
		if math.Abs(r.NetWorth-(r.HouseEquity+r.InvestedPortfolio)) > 1e-6 {
			t.Errorf("period %d: net worth %.2f != equity %.2f + portfolio %.2f",
				r.Period, r.NetWorth, r.HouseEquity, r.InvestedPortfolio)
		}
		if r.RemainingBalance < 0 {
			t.Errorf("period %d: negative balance %.2f", r.Period, r.RemainingBalance)
		}
	}
}

func TestProjectPortfolioMatchesClosedForm(t *testing.T) {
	in := defaultInputs()
	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	surplus, err := MonthlySurplus(in)
	if err != nil {
		t.Fatalf("MonthlySurplus() error = %v", err)
	}
	payment, _ := loans.CalculateMonthlyPayment(1200000, 6.125, 360)
	if math.Abs(surplus-(20000-payment-7000)) > 1e-9 {
		t.Errorf("MonthlySurplus() = %.2f, expected %.2f", surplus, 20000-payment-7000)
	}

	for _, month := range []int{1, 12, 120, 360} {
		expected := FutureValue(surplus, in.AnnualInvestmentReturnPercent, month)
		got := records[month-1].InvestedPortfolio
		if math.Abs(got-expected) > 1e-6*math.Max(1, math.Abs(expected)) {
			t.Errorf("month %d: portfolio %.2f, expected %.2f", month, got, expected)
		}
	}
}

func TestProjectZeroSurplus(t *testing.T) {
	in := defaultInputs()
	payment, err := loans.CalculateMonthlyPayment(in.LoanAmount(), in.AnnualMortgageRatePercent, 360)
	if err != nil {
		t.Fatalf("CalculateMonthlyPayment() error = %v", err)
	}
	in.MonthlyIncome = payment + in.MonthlyExpenses

	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	for _, r := range records {
		if math.Abs(r.InvestedPortfolio) > 1e-6 {
			t.Fatalf("period %d: portfolio %.8f, expected 0", r.Period, r.InvestedPortfolio)
		}
	}
}

func TestProjectNoAppreciation(t *testing.T) {
	in := defaultInputs()
	in.AnnualAppreciationPercent = 0

	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for _, r := range records {
		if r.HouseAppreciation != 0 {
			t.Fatalf("period %d: appreciation %.2f, expected 0", r.Period, r.HouseAppreciation)
		}
		// Equity is the down payment plus principal repaid.
		expected := in.HomeValue - r.RemainingBalance
		if math.Abs(r.HouseEquity-expected) > 1e-6 {
			t.Fatalf("period %d: equity %.4f, expected %.4f", r.Period, r.HouseEquity, expected)
		}
	}

	final, ok := Final(records)
	if !ok {
		t.Fatal("Final() reported an empty projection")
	}
	if math.Abs(final.HouseEquity-in.HomeValue) > 0.01 {
		t.Errorf("final equity %.2f, expected full home value %.2f", final.HouseEquity, in.HomeValue)
	}
}

func TestProjectEquityTracksClosedFormBalance(t *testing.T) {
	in := defaultInputs()
	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	schedule, err := loans.Schedule(in.LoanAmount(), in.AnnualMortgageRatePercent, 360)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	interest := 0.0
	for i, r := range records {
		interest += schedule[i].Interest
		if math.Abs(r.RemainingBalance-schedule[i].RemainingPrincipal) > 0.05 {
			t.Fatalf("period %d: balance %.4f, schedule %.4f", r.Period, r.RemainingBalance, schedule[i].RemainingPrincipal)
		}
		if math.Abs(r.InterestPaid-interest) > 0.05 {
			t.Fatalf("period %d: interest paid %.4f, schedule %.4f", r.Period, r.InterestPaid, interest)
		}
		if math.Abs(r.HouseEquity-(r.HouseValue-r.RemainingBalance)) > 1e-6 {
			t.Fatalf("period %d: equity %.4f != value %.4f - balance %.4f", r.Period, r.HouseEquity, r.HouseValue, r.RemainingBalance)
		}
	}
}

func TestProjectZeroMortgageRate(t *testing.T) {
	in := defaultInputs()
	in.AnnualMortgageRatePercent = 0

	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	for _, r := range records {
		if math.Abs(r.InterestPaid) > 1e-6 {
			t.Fatalf("period %d: interest paid %.4f on a zero-rate loan", r.Period, r.InterestPaid)
		}
	}
	expectedBalance := 1200000 - 1200000.0/360*120
	if math.Abs(records[119].RemainingBalance-expectedBalance) > 1e-6 {
		t.Errorf("month 120 balance %.2f, expected %.2f", records[119].RemainingBalance, expectedBalance)
	}
}

func TestProjectDeficit(t *testing.T) {
	in := defaultInputs()
	in.MonthlyIncome = 10000

	records, err := Project(in)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if records[0].InvestedPortfolio >= 0 {
		t.Errorf("month 1 portfolio %.2f, expected a deficit", records[0].InvestedPortfolio)
	}
}

func TestProjectIdempotent(t *testing.T) {
	first, err := Project(defaultInputs())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	second, err := Project(defaultInputs())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Project() produced different output for identical input")
	}
}

func TestProjectInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WealthInputs)
	}{
		{"Down payment exceeds home value", func(in *WealthInputs) { in.DownPayment = in.HomeValue + 1 }},
		{"Negative home value", func(in *WealthInputs) { in.HomeValue = -1 }},
		{"Negative expenses", func(in *WealthInputs) { in.MonthlyExpenses = -100 }},
		{"NaN income", func(in *WealthInputs) { in.MonthlyIncome = math.NaN() }},
		{"Negative mortgage rate", func(in *WealthInputs) { in.AnnualMortgageRatePercent = -1 }},
		{"Infinite appreciation", func(in *WealthInputs) { in.AnnualAppreciationPercent = math.Inf(1) }},
		{"Total loss return", func(in *WealthInputs) { in.AnnualInvestmentReturnPercent = -100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := defaultInputs()
			tt.mutate(&in)

			records, err := Project(in)
			if !errors.Is(err, loans.ErrInvalidInput) {
				t.Errorf("Project() error = %v, expected ErrInvalidInput", err)
			}
			if records != nil {
				t.Errorf("Project() returned partial results on invalid input")
			}
			if _, err := MonthlySurplus(in); !errors.Is(err, loans.ErrInvalidInput) {
				t.Errorf("MonthlySurplus() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

func TestFinalEmpty(t *testing.T) {
	if _, ok := Final(nil); ok {
		t.Errorf("Final(nil) reported a record")
	}
}
