// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// cents rounds a value half away from zero to whole cents for display.
func cents(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(constants.DisplayPlaces)
}

// csvMoney renders a value for a CSV cell, e.g. "1234.56".
func csvMoney(value float64) string {
	return cents(value).StringFixed(constants.DisplayPlaces)
}

func csvRatio(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(6)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

// label returns the calendar month for a 1-based period, or "" when labels
// are disabled.
func label(labels []string, period int) string {
	if period < 1 || period > len(labels) {
		return ""
	}
	return labels[period-1]
}

// isYearEnd reports whether period closes a year or is the last of n periods.
func isYearEnd(period, n int) bool {
	return mathutil.MonthOfYear(period) == constants.MonthsPerYear || period == n
}

// table renders left-aligned pipe-separated columns.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *table) String() string {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(" | ")
			}
			if i == len(cells)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
		b.WriteString("\n")
	}

	writeRow(t.header)
	separators := make([]string, len(t.header))
	for i := range separators {
		separators[i] = strings.Repeat("_", widths[i])
	}
	writeRow(separators)
	for _, row := range t.rows {
		writeRow(row)
	}
	return b.String()
}
