package loans

import (
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given payment.
type Payment struct {
	Period             int     `json:"period"`
	Year               int     `json:"year"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// Schedule is a convenience wrapper that generates a schedule without logging.
func Schedule(principal, annualRatePercent float64, termMonths int) ([]Payment, error) {
	return NewAmortizationScheduleGenerator(nil).GenerateSchedule(LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
	})
}

// GenerateSchedule creates the complete amortization schedule for a loan. Each
// period's interest accrues on the balance left by the previous period.
func (g *AmortizationScheduleGenerator) GenerateSchedule(terms LoanTerms) ([]Payment, error) {
	monthlyPayment, err := CalculateMonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths)
	if err != nil {
		return nil, err
	}

	schedule := make([]Payment, 0, terms.TermMonths)
	remaining := terms.Principal

	for period := 1; period <= terms.TermMonths; period++ {
		var current Payment
		current.Period = period
		current.Year = mathutil.YearIndex(period)
		current.Payment = monthlyPayment
		current.Interest = CalculateInterestPayment(remaining, terms.AnnualRatePercent)
		current.Principal = monthlyPayment - current.Interest

		remaining -= current.Principal
		if period == terms.TermMonths && mathutil.WithinTolerance(remaining, 0, constants.BalanceDriftTolerance) {
			// Machine error accumulated over the fold; the loan is paid off.
			if remaining != 0 {
				g.logger.Debug("absorbing floating point drift in final balance",
					zap.String("op", "loans.GenerateSchedule"),
					zap.Float64("drift", remaining),
				)
			}
			remaining = 0
		}
		current.RemainingPrincipal = mathutil.Max(remaining, 0)
		schedule = append(schedule, current)
	}

	g.logger.Debug("generated amortization schedule",
		zap.String("op", "loans.GenerateSchedule"),
		zap.Float64("principal", terms.Principal),
		zap.Float64("rate", terms.AnnualRatePercent),
		zap.Int("term", terms.TermMonths),
		zap.Float64("payment", monthlyPayment),
	)

	return schedule, nil
}
