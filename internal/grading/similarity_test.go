package grading

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"", "abc", 0},
		{"abc", "", 0},
		{"saude", "saude", 1},
		{"abcd", "bcde", 0.75},              // block "bcd": 2*3/8
		{"direto", "direito", 12.0 / 13.0},  // "dire"+"to": 2*6/13
		{"tipicidade", "atipicidade", 20.0 / 21.0}, // full word inside: 2*10/21
	}
	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioSymmetricRange(t *testing.T) {
	pairs := [][2]string{
		{"furto", "dignidade"},
		{"saude", "saudade"},
		{"cf 196", "cf196"},
	}
	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		if r < 0 || r > 1 {
			t.Errorf("Ratio(%q, %q) = %v out of [0,1]", p[0], p[1], r)
		}
	}
}
