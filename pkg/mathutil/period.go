package mathutil

import "github.com/iwvelando/mortgage-forecast/pkg/constants"

// YearIndex returns the 1-based year a 1-based period falls in, i.e.
// ceil(period/12).
func YearIndex(period int) int {
	if period <= 0 {
		return 0
	}
	return (period-1)/constants.MonthsPerYear + 1
}

// MonthOfYear returns the 1-based month within its year for a 1-based period.
func MonthOfYear(period int) int {
	if period <= 0 {
		return 0
	}
	return (period-1)%constants.MonthsPerYear + 1
}
