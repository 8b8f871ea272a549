// Package finance projects net worth as home equity plus an invested cash surplus.
package finance

import (
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// WealthInputs holds the scalar inputs for one home-purchase scenario. Rates
// are annual percentages.
type WealthInputs struct {
	HomeValue                     float64 `json:"homeValue"`
	DownPayment                   float64 `json:"downPayment"`
	MonthlyIncome                 float64 `json:"monthlyIncome"`
	MonthlyExpenses               float64 `json:"monthlyExpenses"`
	AnnualInvestmentReturnPercent float64 `json:"annualInvestmentReturnPercent"`
	AnnualAppreciationPercent     float64 `json:"annualAppreciationPercent"`
	AnnualMortgageRatePercent     float64 `json:"annualMortgageRatePercent"`
}

// LoanAmount returns the amount financed.
func (in WealthInputs) LoanAmount() float64 {
	return in.HomeValue - in.DownPayment
}

// Validate rejects inputs that cannot be projected.
func (in WealthInputs) Validate() error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"home value", in.HomeValue},
		{"down payment", in.DownPayment},
		{"monthly income", in.MonthlyIncome},
		{"monthly expenses", in.MonthlyExpenses},
	}
	for _, amount := range amounts {
		if !mathutil.IsFinite(amount.value) || amount.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative amount, got %v", loans.ErrInvalidInput, amount.name, amount.value)
		}
	}
	if in.DownPayment > in.HomeValue {
		return fmt.Errorf("%w: down payment %v exceeds home value %v", loans.ErrInvalidInput, in.DownPayment, in.HomeValue)
	}

	growthRates := []struct {
		name  string
		value float64
	}{
		{"investment return", in.AnnualInvestmentReturnPercent},
		{"appreciation", in.AnnualAppreciationPercent},
	}
	for _, rate := range growthRates {
		if !mathutil.IsFinite(rate.value) || rate.value <= -constants.PercentageMultiplier {
			return fmt.Errorf("%w: %s must be a finite percentage above -100, got %v", loans.ErrInvalidInput, rate.name, rate.value)
		}
	}

	return loans.LoanTerms{
		Principal:         in.LoanAmount(),
		AnnualRatePercent: in.AnnualMortgageRatePercent,
		TermMonths:        constants.ProjectionMonths,
	}.Validate()
}

// WealthRecord is the state of one scenario at the end of a month.
type WealthRecord struct {
	Period            int     `json:"period"`
	Year              int     `json:"year"`
	HouseValue        float64 `json:"houseValue"`
	RemainingBalance  float64 `json:"remainingBalance"`
	HouseAppreciation float64 `json:"houseAppreciation"`
	InterestPaid      float64 `json:"interestPaid"`
	HouseEquity       float64 `json:"houseEquity"`
	InvestedPortfolio float64 `json:"investedPortfolio"`
	NetWorth          float64 `json:"netWorth"`
}

// MonthlySurplus returns the cash left each month after the mortgage payment
// and other expenses. It is negative when the scenario runs a deficit.
func MonthlySurplus(in WealthInputs) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	payment, err := loans.CalculateMonthlyPayment(in.LoanAmount(), in.AnnualMortgageRatePercent, constants.ProjectionMonths)
	if err != nil {
		return 0, err
	}
	return in.MonthlyIncome - payment - in.MonthlyExpenses, nil
}

// WealthProjector computes month-by-month net worth projections.
type WealthProjector struct {
	logger *zap.Logger
}

// NewWealthProjector creates a new projector instance.
func NewWealthProjector(logger *zap.Logger) *WealthProjector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WealthProjector{logger: logger}
}

// Project is a convenience wrapper that projects without logging.
func Project(in WealthInputs) ([]WealthRecord, error) {
	return NewWealthProjector(nil).Project(in)
}

// Project produces the 360-month projection for the inputs. The portfolio is a
// running fold while home equity is derived each month from the closed-form
// loan balance, so equity never accumulates rounding drift.
func (wp *WealthProjector) Project(in WealthInputs) ([]WealthRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loanAmount := in.LoanAmount()
	payment, err := loans.CalculateMonthlyPayment(loanAmount, in.AnnualMortgageRatePercent, constants.ProjectionMonths)
	if err != nil {
		return nil, err
	}
	monthlySurplus := in.MonthlyIncome - payment - in.MonthlyExpenses
	appreciationFactor := 1 + mathutil.PercentToMonthlyRate(in.AnnualAppreciationPercent)

	portfolio := NewPortfolioProcessor(wp.logger, in.AnnualInvestmentReturnPercent)
	var state PortfolioState
	houseValueCurrent := in.HomeValue

	records := make([]WealthRecord, 0, constants.ProjectionMonths)
	for month := 1; month <= constants.ProjectionMonths; month++ {
		portfolio.Step(&state, monthlySurplus)
		houseValueCurrent *= appreciationFactor

		remaining := loans.RemainingBalance(loanAmount, in.AnnualMortgageRatePercent, payment, month)
		houseAppreciation := houseValueCurrent - in.HomeValue
		totalPaid := payment * float64(month)
		interestPaid := totalPaid - (loanAmount - remaining)
		houseEquity := houseAppreciation + in.DownPayment + totalPaid - interestPaid

		records = append(records, WealthRecord{
			Period:            month,
			Year:              mathutil.YearIndex(month),
			HouseValue:        houseValueCurrent,
			RemainingBalance:  remaining,
			HouseAppreciation: houseAppreciation,
			InterestPaid:      interestPaid,
			HouseEquity:       houseEquity,
			InvestedPortfolio: state.CurrentValue,
			NetWorth:          houseEquity + state.CurrentValue,
		})
	}

	if monthlySurplus < 0 {
		wp.logger.Debug("scenario runs a monthly deficit",
			zap.String("op", "finance.Project"),
			zap.Float64("surplus", monthlySurplus),
		)
	}
	wp.logger.Debug("projected net worth",
		zap.String("op", "finance.Project"),
		zap.Float64("payment", payment),
		zap.Float64("surplus", monthlySurplus),
		zap.Float64("finalNetWorth", records[len(records)-1].NetWorth),
	)

	return records, nil
}

// Final returns the last record of a projection.
func Final(records []WealthRecord) (WealthRecord, bool) {
	if len(records) == 0 {
		return WealthRecord{}, false
	}
	return records[len(records)-1], true
}
