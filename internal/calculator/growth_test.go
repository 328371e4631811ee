package calculator

import (
	"math"
	"reflect"
	"testing"
)

func TestSimulateGrowth(t *testing.T) {
	got := SimulateGrowth(0, 100, 1, 12)

	if len(got.Timeline) != 1 {
		t.Fatalf("timeline: expected 1 entry, got %d", len(got.Timeline))
	}
	if got.Timeline[0].Year != 1 {
		t.Errorf("timeline year = %d, want 1", got.Timeline[0].Year)
	}
	if got.TotalContributions != 1200 {
		t.Errorf("TotalContributions = %v, want 1200", got.TotalContributions)
	}
	if got.FutureValue <= got.TotalContributions {
		t.Errorf("FutureValue %v should exceed contributions %v", got.FutureValue, got.TotalContributions)
	}
	// Contribution lands before interest each month.
	if math.Abs(got.FutureValue-1280.9328043328942) > 1e-9 {
		t.Errorf("FutureValue = %v, want 1280.9328043328942", got.FutureValue)
	}
	if math.Abs(got.InterestEarned-(got.FutureValue-got.TotalContributions)) > 1e-9 {
		t.Errorf("InterestEarned = %v, inconsistent with value and contributions", got.InterestEarned)
	}
	if got.Timeline[0].Value != got.FutureValue {
		t.Errorf("year-end snapshot %v != FutureValue %v", got.Timeline[0].Value, got.FutureValue)
	}

	if again := SimulateGrowth(0, 100, 1, 12); !reflect.DeepEqual(got, again) {
		t.Error("repeated simulation differs")
	}
}

func TestSimulateGrowth_Cases(t *testing.T) {
	tests := []struct {
		name              string
		initial           float64
		monthly           float64
		years             int
		rate              float64
		wantValue         float64
		wantContributions float64
		wantTimeline      int
	}{
		{name: "zero rate", initial: 500, monthly: 50, years: 2, rate: 0, wantValue: 1700, wantContributions: 1700, wantTimeline: 2},
		{name: "zero years", initial: 500, monthly: 50, years: 0, rate: 6, wantValue: 500, wantContributions: 500, wantTimeline: 0},
		{name: "lump sum only", initial: 1000, monthly: 0, years: 1, rate: 12, wantValue: 1000 * math.Pow(1.01, 12), wantContributions: 1000, wantTimeline: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimulateGrowth(tt.initial, tt.monthly, tt.years, tt.rate)
			if math.Abs(got.FutureValue-tt.wantValue) > 0.01 {
				t.Errorf("FutureValue = %v, want %v", got.FutureValue, tt.wantValue)
			}
			if math.Abs(got.TotalContributions-tt.wantContributions) > 0.01 {
				t.Errorf("TotalContributions = %v, want %v", got.TotalContributions, tt.wantContributions)
			}
			if len(got.Timeline) != tt.wantTimeline {
				t.Errorf("timeline: expected %d entries, got %d", tt.wantTimeline, len(got.Timeline))
			}
		})
	}
}
