package finance

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestPortfolioProcessorStep_GrowthBeforeContribution(t *testing.T) {
	processor := NewPortfolioProcessor(zap.NewNop(), 12) // 1% monthly
	state := PortfolioState{CurrentValue: 1000}

	change := processor.Step(&state, 100)

	if math.Abs(change.Growth-10) > 1e-9 {
		t.Errorf("Growth = %.2f, want 10", change.Growth)
	}
	if math.Abs(change.Contribution-100) > 1e-9 {
		t.Errorf("Contribution = %.2f, want 100", change.Contribution)
	}
	if math.Abs(change.NetChange-110) > 1e-9 {
		t.Errorf("NetChange = %.2f, want 110", change.NetChange)
	}
	if math.Abs(state.CurrentValue-1110) > 1e-9 {
		t.Errorf("updated state = %.2f, want 1110", state.CurrentValue)
	}
}

func TestPortfolioProcessorStep_Deficit(t *testing.T) {
	processor := NewPortfolioProcessor(nil, 6)
	var state PortfolioState

	processor.Step(&state, -500)
	processor.Step(&state, -500)

	expected := -500*1.005 - 500
	if math.Abs(state.CurrentValue-expected) > 1e-9 {
		t.Errorf("state.CurrentValue = %.4f, want %.4f", state.CurrentValue, expected)
	}
}

func TestFutureValueMatchesRepeatedSteps(t *testing.T) {
	tests := []struct {
		name         string
		contribution float64
		annualReturn float64
		months       int
	}{
		{"Seven percent for thirty years", 5708.67, 7, 360},
		{"Zero return", 250, 0, 120},
		{"Negative contribution", -1200, 4, 60},
		{"No months", 1000, 5, 0},
		{"Tiny return", 1000, 1e-11, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := NewPortfolioProcessor(nil, tt.annualReturn)
			var state PortfolioState
			for i := 0; i < tt.months; i++ {
				processor.Step(&state, tt.contribution)
			}

			closed := FutureValue(tt.contribution, tt.annualReturn, tt.months)
			if math.Abs(closed-state.CurrentValue) > 1e-9*math.Max(1, math.Abs(closed)) {
				t.Errorf("FutureValue() = %.6f, fold = %.6f", closed, state.CurrentValue)
			}
		})
	}
}
