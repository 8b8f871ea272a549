// Package datetime labels projection periods with calendar months.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// ValidateStartDate checks that a configured start month parses. An empty
// start date is valid and disables calendar labels.
func ValidateStartDate(startDate string) error {
	if startDate == "" {
		return nil
	}
	if _, err := time.Parse(DateTimeLayout, startDate); err != nil {
		return fmt.Errorf("start date %q must use the YYYY-MM format: %w", startDate, err)
	}
	return nil
}

// Labeler maps 1-based periods to calendar months starting at a fixed month.
type Labeler struct {
	start string
}

// NewLabeler returns a labeler whose period 1 is startDate. An empty
// startDate yields a labeler that returns empty labels.
func NewLabeler(startDate string) (*Labeler, error) {
	if err := ValidateStartDate(startDate); err != nil {
		return nil, err
	}
	return &Labeler{start: startDate}, nil
}

// Enabled reports whether labels are produced.
func (l *Labeler) Enabled() bool {
	return l != nil && l.start != ""
}

// Label returns the YYYY-MM month for a period, or "" when disabled.
func (l *Labeler) Label(period int) string {
	if !l.Enabled() {
		return ""
	}
	label, err := OffsetDate(l.start, DateTimeLayout, period-1)
	if err != nil {
		// The start date was validated in NewLabeler.
		return ""
	}
	return label
}
