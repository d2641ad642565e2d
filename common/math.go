package common

import "math"

// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func Round(num float64) int64 {
	return int64(num + math.Copysign(0.5, num))
}

// DecimalToFixed rounds num to precision decimal places.
// A negative precision returns num unchanged.
func DecimalToFixed(num float64, precision int) float64 {
	if precision < 0 {
		return num
	}
	output := math.Pow(10, float64(precision))
	return float64(Round(num*output)) / output
}
