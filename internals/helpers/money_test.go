package helper

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{333.333333, 333.33},
		{0, 0},
		{199.999, 200},
		{1000.0 / 3, 333.33},
		{-10.016, -10.02},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(200); got != "200.00" {
		t.Errorf("FormatAmount(200) = %q, want %q", got, "200.00")
	}
	if got := FormatAmount(333.33); got != "333.33" {
		t.Errorf("FormatAmount(333.33) = %q, want %q", got, "333.33")
	}
}
