// montecarlo/stats.go
// Package: montecarlo
package montecarlo

import "math"

// Summarize reduces a failure-time sample to its mean, sample standard
// deviation (n-1 denominator) and standard error. A sample of size one
// has zero spread; an empty sample yields all zeros.
func Summarize(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sd float64
	if n > 1 {
		var varsum float64
		for _, v := range values {
			d := v - mean
			varsum += d * d
		}
		sd = math.Sqrt(varsum / float64(n-1))
	}

	return Stats{
		Mean:   mean,
		StdDev: sd,
		StdErr: sd / math.Sqrt(float64(n)),
	}
}

// Round2 rounds to two decimals for display; the simulators themselves
// never round.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
