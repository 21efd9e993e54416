package errors

import (
	"fmt"
	"math"
)

// CheckFinite returns a ValueError naming the first NaN or Inf in values.
// name identifies the argument (for example "x" or "y") in the message.
func CheckFinite(op, name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(op, fmt.Sprintf("%s[%d] is not finite: %v", name, i, v))
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for NaN or Inf.
func CheckScalar(op, name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValueError(op, fmt.Sprintf("%s is not finite: %v", name, value))
	}
	return nil
}
