package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/finance"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
)

// PrettyComparison outputs the per-house metrics, year-end projections, and
// the pairwise net worth comparisons as human-readable tables.
func PrettyComparison(w io.Writer, result forecast.ComparisonResult) {
	_, _ = fmt.Fprintf(w, "--- House comparison ---\n")
	summary := table{header: []string{"House", "Loan amount", "Monthly payment", "Monthly surplus", "Final equity", "Final portfolio", "Final net worth"}}
	for _, projection := range result.Projections {
		final, _ := finance.Final(projection.Records)
		summary.add(
			projection.Name,
			format.Currency(projection.Inputs.LoanAmount()),
			format.Currency(projection.MonthlyPayment),
			format.Currency(projection.MonthlySurplus),
			format.Currency(final.HouseEquity),
			format.Currency(final.InvestedPortfolio),
			format.Currency(final.NetWorth),
		)
	}
	_, _ = io.WriteString(w, summary.String())

	for _, projection := range result.Projections {
		_, _ = fmt.Fprintf(w, "\n--- Results for house %s ---\n", projection.Name)
		years := table{header: yearHeader(result.Labels, "House value", "Remaining balance", "Interest paid", "Equity", "Portfolio", "Net worth")}
		for _, record := range projection.Records {
			if !isYearEnd(record.Period, len(projection.Records)) {
				continue
			}
			row := yearCells(result.Labels, record.Year, record.Period)
			row = append(row,
				format.Currency(record.HouseValue),
				format.Currency(record.RemainingBalance),
				format.Currency(record.InterestPaid),
				format.Currency(record.HouseEquity),
				format.Currency(record.InvestedPortfolio),
				format.Currency(record.NetWorth),
			)
			years.add(row...)
		}
		_, _ = io.WriteString(w, years.String())
	}

	for _, pair := range result.Comparisons {
		_, _ = fmt.Fprintf(w, "\n--- %s vs %s ---\n", pair.Baseline, pair.Other)
		_, _ = fmt.Fprintf(w, "%s\n", describeCrossover(result.Labels, pair))
		_, _ = fmt.Fprintf(w, "%s\n", describeLeader(pair))

		diffs := table{header: yearHeader(result.Labels, "Net worth ("+pair.Baseline+")", "Net worth ("+pair.Other+")", "Difference")}
		for _, point := range pair.YearEnd() {
			row := yearCells(result.Labels, point.Year, point.Period)
			row = append(row,
				format.Currency(point.NetWorthA),
				format.Currency(point.NetWorthB),
				format.Currency(point.Difference),
			)
			diffs.add(row...)
		}
		_, _ = io.WriteString(w, diffs.String())
	}
}

// PrettyComparisonString returns the PrettyComparison rendering as a string.
func PrettyComparisonString(result forecast.ComparisonResult) string {
	var b strings.Builder
	PrettyComparison(&b, result)
	return b.String()
}

// CsvComparison outputs one row per month with every house's projection and
// every pairwise difference in comma-separated value format.
func CsvComparison(w io.Writer, result forecast.ComparisonResult) error {
	if len(result.Projections) == 0 {
		return fmt.Errorf("no projections to output")
	}

	writer := csv.NewWriter(w)
	header := []string{"period", "year", "month", "date"}
	for _, projection := range result.Projections {
		header = append(header,
			fmt.Sprintf("house_value (%s)", projection.Name),
			fmt.Sprintf("remaining_balance (%s)", projection.Name),
			fmt.Sprintf("house_equity (%s)", projection.Name),
			fmt.Sprintf("invested_portfolio (%s)", projection.Name),
			fmt.Sprintf("net_worth (%s)", projection.Name),
		)
	}
	for _, pair := range result.Comparisons {
		header = append(header, fmt.Sprintf("difference (%s - %s)", pair.Baseline, pair.Other))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// All projections share the same timeline, so walk the first.
	for i, record := range result.Projections[0].Records {
		row := []string{
			itoa(record.Period),
			itoa(record.Year),
			itoa(mathutil.MonthOfYear(record.Period)),
			label(result.Labels, record.Period),
		}
		for _, projection := range result.Projections {
			current := projection.Records[i]
			row = append(row,
				csvMoney(current.HouseValue),
				csvMoney(current.RemainingBalance),
				csvMoney(current.HouseEquity),
				csvMoney(current.InvestedPortfolio),
				csvMoney(current.NetWorth),
			)
		}
		for _, pair := range result.Comparisons {
			row = append(row, csvMoney(pair.Points[i].Difference))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvComparisonString returns the CsvComparison rendering as a string.
func CsvComparisonString(result forecast.ComparisonResult) (string, error) {
	var b strings.Builder
	if err := CsvComparison(&b, result); err != nil {
		return "", err
	}
	return b.String(), nil
}

func yearHeader(labels []string, columns ...string) []string {
	header := []string{"Year"}
	if len(labels) > 0 {
		header = append(header, "Date")
	}
	return append(header, columns...)
}

func yearCells(labels []string, year, period int) []string {
	cells := []string{itoa(year)}
	if len(labels) > 0 {
		cells = append(cells, label(labels, period))
	}
	return cells
}

func houseName(pair forecast.PairComparison, side string) string {
	if side == "A" {
		return pair.Baseline
	}
	return pair.Other
}

func describeCrossover(labels []string, pair forecast.PairComparison) string {
	crossover := pair.Crossover
	if crossover == nil {
		return "Break-even: none within the projection"
	}
	when := fmt.Sprintf("month %d (year %d, %s into the month)", crossover.Period, crossover.Year, format.Percent(crossover.Fraction))
	if date := label(labels, crossover.Period); date != "" {
		when = fmt.Sprintf("%s on %s", when, date)
	}
	return fmt.Sprintf("Break-even: %s, after which %s leads", when, houseName(pair, crossover.LeaderAfter))
}

func describeLeader(pair forecast.PairComparison) string {
	leader := pair.Leader()
	if leader == "" {
		return "Final net worth: tied"
	}
	difference := pair.FinalA - pair.FinalB
	if difference < 0 {
		difference = -difference
	}
	return fmt.Sprintf("Final net worth: %s ahead by %s", houseName(pair, leader), format.Currency(difference))
}
