package engine

import "testing"

func TestShouldAlert(t *testing.T) {
	cases := []struct {
		name    string
		edible  bool
		surplus float64
		want    bool
	}{
		{"at threshold", true, 5, true},
		{"just below threshold", true, 4.99, false},
		{"well above threshold", true, 42, true},
		{"inedible large surplus", false, 100, false},
		{"inedible at threshold", false, 5, false},
		{"zero surplus", true, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldAlert(tc.edible, tc.surplus); got != tc.want {
				t.Errorf("ShouldAlert(%v, %v) = %v, want %v", tc.edible, tc.surplus, got, tc.want)
			}
		})
	}
}
