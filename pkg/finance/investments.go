package finance

import (
	"math"

	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// PortfolioState tracks the running value of the invested surplus across
// projection months.
type PortfolioState struct {
	CurrentValue float64 `json:"currentValue"`
}

// PortfolioChange captures the computed deltas for the portfolio in a given month.
type PortfolioChange struct {
	Growth       float64 `json:"growth"`
	Contribution float64 `json:"contribution"`
	NetChange    float64 `json:"netChange"`
}

// PortfolioProcessor compounds the invested surplus monthly.
type PortfolioProcessor struct {
	logger      *zap.Logger
	monthlyRate float64
}

// NewPortfolioProcessor creates a processor for a portfolio earning the given
// annual return percentage, compounded monthly.
func NewPortfolioProcessor(logger *zap.Logger, annualReturnPercent float64) *PortfolioProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioProcessor{
		logger:      logger,
		monthlyRate: mathutil.PercentToMonthlyRate(annualReturnPercent),
	}
}

// Step grows the portfolio by one month of returns and then adds the
// contribution. A negative contribution draws the portfolio down and may take
// it below zero.
func (pp *PortfolioProcessor) Step(state *PortfolioState, contribution float64) PortfolioChange {
	previousValue := state.CurrentValue

	growth := state.CurrentValue * pp.monthlyRate
	state.CurrentValue = state.CurrentValue*(1+pp.monthlyRate) + contribution

	return PortfolioChange{
		Growth:       growth,
		Contribution: contribution,
		NetChange:    state.CurrentValue - previousValue,
	}
}

// FutureValue returns the value after months of constant end-of-month
// contributions at the given annual return, i.e. the closed form of repeated
// Step calls from an empty portfolio.
func FutureValue(contribution, annualReturnPercent float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	rate := mathutil.PercentToMonthlyRate(annualReturnPercent)
	if rate == 0 {
		return contribution * float64(months)
	}
	return contribution * math.Expm1(float64(months)*math.Log1p(rate)) / rate
}
