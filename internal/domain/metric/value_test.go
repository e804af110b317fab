package metric

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		num, den  float64
		want      float64
		wantValid bool
	}{
		{name: "regular", num: 3, den: 4, want: 0.75, wantValid: true},
		{name: "zero numerator", num: 0, den: 4, want: 0, wantValid: true},
		{name: "zero denominator", num: 3, den: 0, wantValid: false},
		{name: "both zero", num: 0, den: 0, wantValid: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Ratio(tc.num, tc.den).Float()
			if ok != tc.wantValid {
				t.Fatalf("expected defined=%v, got=%v", tc.wantValid, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected value=%v, got=%v", tc.want, got)
			}
		})
	}
}

func TestOf_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Of(v).Defined() {
			t.Fatalf("expected %v to be undefined", v)
		}
	}
}

func TestValue_OrZeroAndString(t *testing.T) {
	t.Parallel()

	if got := Undefined().OrZero(); got != 0 {
		t.Fatalf("expected undefined to present as 0, got=%v", got)
	}
	if got := Undefined().String(); got != "undefined" {
		t.Fatalf("unexpected string for undefined: %q", got)
	}
	if got := Of(0.5).String(); got != "0.5" {
		t.Fatalf("unexpected string for 0.5: %q", got)
	}
}
