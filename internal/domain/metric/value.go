package metric

import (
	"math"
	"strconv"
)

// Value is a derived number that may be undefined, for example a ratio
// computed over an empty denominator.
type Value struct {
	v       float64
	defined bool
}

func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined()
	}
	return Value{v: v, defined: true}
}

func Undefined() Value {
	return Value{}
}

// Ratio returns num/den, or Undefined when den is zero.
func Ratio(num, den float64) Value {
	if den == 0 {
		return Undefined()
	}
	return Of(num / den)
}

func (v Value) Defined() bool {
	return v.defined
}

func (v Value) Float() (float64, bool) {
	return v.v, v.defined
}

// OrZero is the presentation fallback used by charts.
func (v Value) OrZero() float64 {
	if !v.defined {
		return 0
	}
	return v.v
}

func (v Value) String() string {
	if !v.defined {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}
