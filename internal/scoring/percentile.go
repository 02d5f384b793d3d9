package scoring

import "math"

// Abramowitz–Stegun 7.1.26 rational approximation constants for erf.
// Downstream stanine banding depends on this exact approximation, so do not
// swap it for math.Erf.
const (
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
	asP  = 0.3275911
)

// normalCDF approximates the standard normal cumulative distribution via the
// Abramowitz–Stegun erf approximation.
func normalCDF(z float64) float64 {
	sign := 1.0
	if z < 0 {
		sign = -1.0
	}
	x := math.Abs(z) / math.Sqrt2

	t := 1.0 / (1.0 + asP*x)
	y := 1.0 - (((((asA5*t+asA4)*t)+asA3)*t+asA2)*t+asA1)*t*math.Exp(-x*x)

	return 0.5 * (1.0 + sign*y)
}

// Percentile converts a raw score to a population percentile given the
// trait's norm, rounded to the nearest integer and clamped to [1,99].
func Percentile(raw float64, n Norm) int {
	z := (raw - n.Mean) / n.SD
	p := int(math.Round(normalCDF(z) * 100))
	if p < 1 {
		p = 1
	}
	if p > 99 {
		p = 99
	}
	return p
}

// Stanine bands a percentile into the standard nine-point scale. The cut
// points encode the standard stanine distribution (4/7/12/17/20/17/12/7/4%);
// any change here shifts every downstream interpretation.
func Stanine(percentile int) int {
	switch {
	case percentile < 4:
		return 1
	case percentile < 11:
		return 2
	case percentile < 23:
		return 3
	case percentile < 40:
		return 4
	case percentile < 60:
		return 5
	case percentile < 77:
		return 6
	case percentile < 89:
		return 7
	case percentile < 96:
		return 8
	default:
		return 9
	}
}
