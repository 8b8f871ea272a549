// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/pkg/compare"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/datetime"
	"github.com/iwvelando/mortgage-forecast/pkg/finance"
	"github.com/iwvelando/mortgage-forecast/pkg/loans"
	"go.uber.org/zap"
)

// ErrNoHouses is returned when a comparison is requested without any houses.
var ErrNoHouses = errors.New("comparison has no houses configured")

// ScheduleResult holds the amortization schedule of the configured mortgage.
type ScheduleResult struct {
	Name     string              `json:"name"`
	Terms    loans.LoanTerms     `json:"terms"`
	Summary  loans.Summary       `json:"summary"`
	Payments []loans.Payment     `json:"payments"`
	Years    []loans.YearSummary `json:"years"`
	// Labels holds the calendar month of each payment when a start date is
	// configured; Labels[i] belongs to Payments[i].
	Labels []string `json:"labels,omitempty"`
}

// Projection is the wealth projection of a single house.
type Projection struct {
	Name           string                 `json:"name"`
	Inputs         finance.WealthInputs   `json:"inputs"`
	MonthlyPayment float64                `json:"monthlyPayment"`
	MonthlySurplus float64                `json:"monthlySurplus"`
	Records        []finance.WealthRecord `json:"records"`
}

// PairComparison compares the first configured house (A) against another (B).
type PairComparison struct {
	Baseline string `json:"baseline"`
	Other    string `json:"other"`
	compare.Comparison
}

// ComparisonResult holds every house projection and the pairwise comparisons.
type ComparisonResult struct {
	Projections []Projection     `json:"projections"`
	Comparisons []PairComparison `json:"comparisons"`
	Labels      []string         `json:"labels,omitempty"`
}

// GetSchedule computes the amortization schedule and yearly summary of the
// configured mortgage.
func GetSchedule(logger *zap.Logger, conf config.Configuration) (ScheduleResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	terms := conf.Mortgage.LoanTerms()
	summary, err := loans.Summarize(terms)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("mortgage %s: %w", conf.Mortgage.Name, err)
	}

	generator := loans.NewAmortizationScheduleGenerator(logger)
	payments, err := generator.GenerateSchedule(terms)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("mortgage %s: %w", conf.Mortgage.Name, err)
	}

	labels, err := periodLabels(conf.StartDate, len(payments))
	if err != nil {
		return ScheduleResult{}, err
	}

	logger.Debug(fmt.Sprintf("computed schedule for mortgage %s", conf.Mortgage.Name),
		zap.String("op", "forecast.GetSchedule"),
		zap.Int("periods", len(payments)),
		zap.Float64("payment", summary.MonthlyPayment),
	)

	return ScheduleResult{
		Name:     conf.Mortgage.Name,
		Terms:    terms,
		Summary:  summary,
		Payments: payments,
		Years:    loans.SummarizeYears(payments, conf.Tax.DeductionPolicy()),
		Labels:   labels,
	}, nil
}

// GetComparison projects net worth for every configured house and compares
// the first house against each of the others. Houses are projected
// independently of one another.
func GetComparison(logger *zap.Logger, conf config.Configuration) (ComparisonResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(conf.Comparison.Houses) == 0 {
		return ComparisonResult{}, ErrNoHouses
	}

	projector := finance.NewWealthProjector(logger)
	var result ComparisonResult
	for _, house := range conf.Comparison.Houses {
		in := conf.Comparison.WealthInputs(house)

		records, err := projector.Project(in)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("house %s: %w", house.Name, err)
		}
		surplus, err := finance.MonthlySurplus(in)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("house %s: %w", house.Name, err)
		}
		payment, err := loans.CalculateMonthlyPayment(in.LoanAmount(), in.AnnualMortgageRatePercent, constants.ProjectionMonths)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("house %s: %w", house.Name, err)
		}

		logger.Debug(fmt.Sprintf("projected house %s", house.Name),
			zap.String("op", "forecast.GetComparison"),
			zap.Float64("payment", payment),
			zap.Float64("surplus", surplus),
		)

		result.Projections = append(result.Projections, Projection{
			Name:           house.Name,
			Inputs:         in,
			MonthlyPayment: payment,
			MonthlySurplus: surplus,
			Records:        records,
		})
	}

	baseline := result.Projections[0]
	for _, other := range result.Projections[1:] {
		comparison, err := compare.Compare(baseline.Records, other.Records)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("comparing %s with %s: %w", baseline.Name, other.Name, err)
		}
		result.Comparisons = append(result.Comparisons, PairComparison{
			Baseline:   baseline.Name,
			Other:      other.Name,
			Comparison: comparison,
		})
	}

	labels, err := periodLabels(conf.StartDate, constants.ProjectionMonths)
	if err != nil {
		return ComparisonResult{}, err
	}
	result.Labels = labels

	return result, nil
}

// periodLabels returns the calendar month for periods 1..n, or nil when no
// start date is configured.
func periodLabels(startDate string, n int) ([]string, error) {
	labeler, err := datetime.NewLabeler(startDate)
	if err != nil {
		return nil, err
	}
	if !labeler.Enabled() {
		return nil, nil
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = labeler.Label(i + 1)
	}
	return labels, nil
}
