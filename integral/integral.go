// integral/integral.go
// Package: integral
//
// Package integral estimates the definite integral
//
//	I = ∫_a^b (2/π) f(x) dx
//
// by uniform Monte Carlo sampling, for the two exam integrands
// f(x) = 1/(e^x + e^-x) and f(x) = 2/(e^x + e^-x).
package integral

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Function selects the integrand.
type Function int

const (
	// FunctionA is f(x) = 1/(e^x + e^-x).
	FunctionA Function = iota
	// FunctionB is f(x) = 2/(e^x + e^-x).
	FunctionB
)

func (f Function) String() string {
	if f == FunctionB {
		return "b"
	}
	return "a"
}

// ParseFunction maps the option letter to a Function.
func ParseFunction(s string) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a":
		return FunctionA, nil
	case "b":
		return FunctionB, nil
	}
	return FunctionA, fmt.Errorf("unknown function option %q (want a or b)", s)
}

// Eval computes f(x) for the selected integrand.
func (f Function) Eval(x float64) float64 {
	den := math.Exp(x) + math.Exp(-x)
	if den == 0 {
		return 0
	}
	if f == FunctionB {
		return 2 / den
	}
	return 1 / den
}

// Config parameterizes one estimation over [A,B] with N samples.
type Config struct {
	A        float64  `json:"a"`
	B        float64  `json:"b"`
	N        int      `json:"n"`
	Function Function `json:"-"`
}

// Validate checks the sampling preconditions. This path validates
// explicitly: a non-positive sample size or an inverted interval is a
// caller error reported before any draw happens.
func (c Config) Validate() error {
	if c.N < 1 {
		return errors.New("sample size n must be >= 1")
	}
	if c.A >= c.B {
		return errors.New("interval bounds must satisfy a < b")
	}
	return nil
}

// Sample is one row of the estimation table: the draw, the integrand
// value and the per-sample area contribution ((b-a)/n)·f(x).
type Sample struct {
	X    float64 `json:"x"`
	FX   float64 `json:"fx"`
	Area float64 `json:"area"`
}

// Result holds both estimates: Base is (b-a)/n·Σf(x_i), Estimate is
// Base scaled by 2/π.
type Result struct {
	Base     float64  `json:"base"`
	Estimate float64  `json:"estimate"`
	Samples  []Sample `json:"samples"`
}

// Estimate draws N uniforms in [A,B], averages the integrand over them
// and scales by the interval width and the 2/π factor of the target
// integral.
func Estimate(cfg Config, rng *rand.Rand) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	factor := (cfg.B - cfg.A) / float64(cfg.N)
	samples := make([]Sample, cfg.N)
	var sum float64
	for i := range samples {
		x := cfg.A + (cfg.B-cfg.A)*rng.Float64()
		fx := cfg.Function.Eval(x)
		samples[i] = Sample{X: x, FX: fx, Area: factor * fx}
		sum += fx
	}

	base := factor * sum
	return Result{
		Base:     base,
		Estimate: 2 / math.Pi * base,
		Samples:  samples,
	}, nil
}
