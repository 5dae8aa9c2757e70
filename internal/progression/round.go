package progression

import "math"

// RoundOrder floors number to the given count of decimal digits.
func RoundOrder(number float32, order int) float32 {
	p := float32(math.Pow10(order))
	return float32(math.Floor(float64(float32(number*p)))) / p
}

// magnitude is the power of ten of the leading digit of number.
func magnitude(number float64) float64 {
	return math.Pow10(int(math.Floor(math.Log10(number))))
}

// firstSignificantFigure returns number scaled into [1, 10), e.g. 23 -> 2.3.
func firstSignificantFigure(number float64) float64 {
	return number / magnitude(number)
}

// pow32 rounds a float64 power once to single precision.
func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
