package money

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "round to 2 decimals", input: 123.456789, want: 123.46},
		{name: "half rounds away from zero", input: 2.675, want: 2.68},
		{name: "negative", input: -1.005, want: -1.01},
		{name: "integer", input: 123.0, want: 123.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Errorf("Sum(0.1, 0.2) = %v, want 0.3", got)
	}
	if got := Sum(); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
}

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0,00 €"},
		{input: 12.5, want: "12,50 €"},
		{input: 1234.5, want: "1 234,50 €"},
		{input: 1234567.891, want: "1 234 567,89 €"},
		{input: -3, want: "-3,00 €"},
		{input: -999999.999, want: "-1 000 000,00 €"},
	}

	for _, tt := range tests {
		if got := FormatEUR(tt.input); got != tt.want {
			t.Errorf("FormatEUR(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(42.25); got != "42.3%" {
		t.Errorf("FormatPercent(42.25) = %q, want \"42.3%%\"", got)
	}
}
