package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-forecast/internal/forecast"
	"github.com/iwvelando/mortgage-forecast/pkg/format"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
)

// PrettyYearlySummary outputs the loan summary and the yearly interest and
// tax deduction table.
func PrettyYearlySummary(w io.Writer, result forecast.ScheduleResult) {
	_, _ = fmt.Fprintf(w, "--- Amortization schedule for %s ---\n", result.Name)
	_, _ = fmt.Fprintf(w, "Loan amount:     %s\n", format.Currency(result.Terms.Principal))
	_, _ = fmt.Fprintf(w, "Interest rate:   %.3f%%\n", result.Terms.AnnualRatePercent)
	_, _ = fmt.Fprintf(w, "Term:            %d months\n", result.Terms.TermMonths)
	_, _ = fmt.Fprintf(w, "Monthly payment: %s\n", format.Currency(result.Summary.MonthlyPayment))
	_, _ = fmt.Fprintf(w, "Total payments:  %s\n", format.Currency(result.Summary.TotalPayments))
	_, _ = fmt.Fprintf(w, "Total interest:  %s\n", format.Currency(result.Summary.TotalInterest))

	_, _ = fmt.Fprintf(w, "\n--- Yearly summary ---\n")
	years := table{header: []string{"Year", "Interest", "Remaining balance", "Deductible", "Deductible interest", "Tax deduction"}}
	for _, year := range result.Years {
		years.add(
			itoa(year.Year),
			format.Currency(year.TotalInterest),
			format.Currency(year.MinRemainingBalance),
			format.Percent(year.DeductibleRatio),
			format.Currency(year.DeductibleInterest),
			format.Currency(year.TaxDeduction),
		)
	}
	_, _ = io.WriteString(w, years.String())
}

// PrettySchedule outputs the loan summary, yearly tax table, and monthly
// amortization schedule as human-readable tables.
func PrettySchedule(w io.Writer, result forecast.ScheduleResult) {
	PrettyYearlySummary(w, result)

	_, _ = fmt.Fprintf(w, "\n--- Monthly schedule ---\n")
	header := []string{"Year", "Month"}
	if len(result.Labels) > 0 {
		header = append(header, "Date")
	}
	header = append(header, "Payment", "Principal", "Interest", "Remaining balance")
	months := table{header: header}
	for _, payment := range result.Payments {
		row := []string{itoa(payment.Year), itoa(mathutil.MonthOfYear(payment.Period))}
		if len(result.Labels) > 0 {
			row = append(row, label(result.Labels, payment.Period))
		}
		row = append(row,
			format.Currency(payment.Payment),
			format.Currency(payment.Principal),
			format.Currency(payment.Interest),
			format.Currency(payment.RemainingPrincipal),
		)
		months.add(row...)
	}
	_, _ = io.WriteString(w, months.String())
}

// PrettyScheduleString returns the PrettySchedule rendering as a string.
func PrettyScheduleString(result forecast.ScheduleResult) string {
	var b strings.Builder
	PrettySchedule(&b, result)
	return b.String()
}

// PrettyYearlySummaryString returns the PrettyYearlySummary rendering as a string.
func PrettyYearlySummaryString(result forecast.ScheduleResult) string {
	var b strings.Builder
	PrettyYearlySummary(&b, result)
	return b.String()
}

// CsvSchedule outputs the monthly amortization schedule in comma-separated
// value format.
func CsvSchedule(w io.Writer, result forecast.ScheduleResult) error {
	writer := csv.NewWriter(w)
	header := []string{"period", "year", "month", "date", "payment", "principal", "interest", "remaining_principal"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, payment := range result.Payments {
		row := []string{
			itoa(payment.Period),
			itoa(payment.Year),
			itoa(mathutil.MonthOfYear(payment.Period)),
			label(result.Labels, payment.Period),
			csvMoney(payment.Payment),
			csvMoney(payment.Principal),
			csvMoney(payment.Interest),
			csvMoney(payment.RemainingPrincipal),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvScheduleString returns the CsvSchedule rendering as a string.
func CsvScheduleString(result forecast.ScheduleResult) (string, error) {
	var b strings.Builder
	if err := CsvSchedule(&b, result); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CsvYearlySummary outputs the yearly interest and tax deduction table in
// comma-separated value format.
func CsvYearlySummary(w io.Writer, result forecast.ScheduleResult) error {
	writer := csv.NewWriter(w)
	header := []string{"year", "total_payment", "total_principal", "total_interest", "remaining_balance",
		"deductible_ratio", "deductible_interest", "tax_deduction"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, year := range result.Years {
		row := []string{
			itoa(year.Year),
			csvMoney(year.TotalPayment),
			csvMoney(year.TotalPrincipal),
			csvMoney(year.TotalInterest),
			csvMoney(year.MinRemainingBalance),
			csvRatio(year.DeductibleRatio),
			csvMoney(year.DeductibleInterest),
			csvMoney(year.TaxDeduction),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvYearlySummaryString returns the CsvYearlySummary rendering as a string.
func CsvYearlySummaryString(result forecast.ScheduleResult) (string, error) {
	var b strings.Builder
	if err := CsvYearlySummary(&b, result); err != nil {
		return "", err
	}
	return b.String(), nil
}
