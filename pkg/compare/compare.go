// Package compare lines up net worth projections for two home purchases.
package compare

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/iwvelando/mortgage-forecast/pkg/finance"
	"github.com/iwvelando/mortgage-forecast/pkg/mathutil"
)

// ErrMismatchedProjections is returned when projections do not cover the same months.
var ErrMismatchedProjections = errors.New("projections are not aligned")

// Point is the net worth of both scenarios at the end of one month.
type Point struct {
	Period     int     `json:"period"`
	Year       int     `json:"year"`
	NetWorthA  float64 `json:"netWorthA"`
	NetWorthB  float64 `json:"netWorthB"`
	Difference float64 `json:"difference"` // A minus B
}

// Crossover describes the first month the leading scenario changes.
type Crossover struct {
	// Period is the month at whose end the new leader is ahead.
	Period int `json:"period"`
	Year   int `json:"year"`
	// Fraction (0..1) of the month, interpolated linearly, where the
	// difference reaches zero.
	Fraction float64 `json:"fraction"`
	// LeaderAfter is "A" or "B".
	LeaderAfter string `json:"leaderAfter"`
}

// Comparison holds the aligned series and its summary.
type Comparison struct {
	Points    []Point    `json:"points"`
	Crossover *Crossover `json:"crossover"`
	FinalA    float64    `json:"finalA"`
	FinalB    float64    `json:"finalB"`
}

// Leader returns which scenario ends the horizon with more net worth, or an
// empty string when they finish within a cent of each other.
func (c Comparison) Leader() string {
	switch {
	case mathutil.IsZero(c.FinalA - c.FinalB):
		return ""
	case c.FinalA > c.FinalB:
		return "A"
	default:
		return "B"
	}
}

// Compare aligns two projections month by month. Both must have the same
// length and period numbering.
func Compare(a, b []finance.WealthRecord) (Comparison, error) {
	if len(a) == 0 || len(b) == 0 {
		return Comparison{}, fmt.Errorf("%w: one or both projections are empty", ErrMismatchedProjections)
	}
	if len(a) != len(b) {
		return Comparison{}, fmt.Errorf("%w: %d months vs %d months", ErrMismatchedProjections, len(a), len(b))
	}

	result := Comparison{Points: make([]Point, 0, len(a))}
	for i := range a {
		if a[i].Period != b[i].Period {
			return Comparison{}, fmt.Errorf("%w: period %d vs %d at index %d",
				ErrMismatchedProjections, a[i].Period, b[i].Period, i)
		}
		result.Points = append(result.Points, Point{
			Period:     a[i].Period,
			Year:       a[i].Year,
			NetWorthA:  a[i].NetWorth,
			NetWorthB:  b[i].NetWorth,
			Difference: a[i].NetWorth - b[i].NetWorth,
		})
	}

	result.Crossover = findCrossover(result.Points)
	result.FinalA = a[len(a)-1].NetWorth
	result.FinalB = b[len(b)-1].NetWorth
	return result, nil
}

// findCrossover returns the first month where the sign of the difference
// flips. Differences within a cent count as ties and do not establish a leader.
func findCrossover(points []Point) *Crossover {
	var prev *Point
	for i := range points {
		current := &points[i]
		if mathutil.IsZero(current.Difference) {
			continue
		}
		if prev != nil && prev.Difference*current.Difference < 0 {
			fraction := 1.0
			if points[i-1].Period == prev.Period {
				// Interpolate only across adjacent months.
				fraction = prev.Difference / (prev.Difference - current.Difference)
			}
			leader := "A"
			if current.Difference < 0 {
				leader = "B"
			}
			return &Crossover{
				Period:      current.Period,
				Year:        current.Year,
				Fraction:    fraction,
				LeaderAfter: leader,
			}
		}
		prev = current
	}
	return nil
}

// YearEnd returns the points that close each year, for yearly tables and charts.
func (c Comparison) YearEnd() []Point {
	var points []Point
	for _, p := range c.Points {
		if mathutil.MonthOfYear(p.Period) == constants.MonthsPerYear || p.Period == c.Points[len(c.Points)-1].Period {
			points = append(points, p)
		}
	}
	return points
}
