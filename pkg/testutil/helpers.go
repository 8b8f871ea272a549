// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"testing"

	"github.com/iwvelando/mortgage-forecast/internal/forecast"
)

// FindProjection finds a house projection by name in the results slice and
// fails the test when it is missing.
func FindProjection(t testing.TB, projections []forecast.Projection, name string) *forecast.Projection {
	t.Helper()
	for i := range projections {
		if projections[i].Name == name {
			return &projections[i]
		}
	}
	t.Fatalf("projection %q not found", name)
	return nil
}

// AlmostEqual reports whether two values differ by no more than tolerance.
func AlmostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
