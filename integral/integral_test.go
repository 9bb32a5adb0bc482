package integral

import (
	"math"
	"math/rand"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	if err := (Config{A: -6, B: 6, N: 10}).Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if err := (Config{A: -6, B: 6, N: 0}).Validate(); err == nil {
		t.Fatal("n = 0 must be rejected")
	}
	if err := (Config{A: 6, B: -6, N: 10}).Validate(); err == nil {
		t.Fatal("inverted interval must be rejected")
	}
	if err := (Config{A: 6, B: 6, N: 10}).Validate(); err == nil {
		t.Fatal("empty interval must be rejected")
	}
}

func TestFunction_Eval(t *testing.T) {
	// At x = 0 the denominator is 2, so f_a = 0.5 and f_b = 1.
	if got := FunctionA.Eval(0); got != 0.5 {
		t.Fatalf("f_a(0) = %v, want 0.5", got)
	}
	if got := FunctionB.Eval(0); got != 1 {
		t.Fatalf("f_b(0) = %v, want 1", got)
	}
	// Both integrands are even.
	for _, x := range []float64{0.5, 1, 3} {
		if FunctionA.Eval(x) != FunctionA.Eval(-x) {
			t.Fatalf("f_a not symmetric at %v", x)
		}
	}
}

func TestEstimate_KnownIntegral(t *testing.T) {
	// ∫ 1/(e^x+e^-x) dx = (1/2)·atan(sinh x); over [-6,6] the integral of
	// f_a is ≈ atan(sinh 6) ≈ π/2 − e⁻⁶·2 ≈ 1.5658, so the 2/π-scaled
	// estimate converges to ≈ 0.9968. Allow a generous tolerance band,
	// the estimator is probabilistic.
	cfg := Config{A: -6, B: 6, N: 200000, Function: FunctionA}
	res, err := Estimate(cfg, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	exact := 2 / math.Pi * math.Atan(math.Sinh(6))
	if math.Abs(res.Estimate-exact) > 0.05 {
		t.Fatalf("estimate %v too far from %v", res.Estimate, exact)
	}
	if math.Abs(res.Estimate-2/math.Pi*res.Base) > 1e-12 {
		t.Fatalf("final estimate %v is not 2/π times the base %v", res.Estimate, res.Base)
	}
}

func TestEstimate_SampleRows(t *testing.T) {
	cfg := Config{A: -6, B: 6, N: 50, Function: FunctionB}
	res, err := Estimate(cfg, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) != cfg.N {
		t.Fatalf("got %d sample rows, want %d", len(res.Samples), cfg.N)
	}
	factor := (cfg.B - cfg.A) / float64(cfg.N)
	var areaSum float64
	for _, s := range res.Samples {
		if s.X < cfg.A || s.X > cfg.B {
			t.Fatalf("draw %v outside [%v,%v]", s.X, cfg.A, cfg.B)
		}
		if math.Abs(s.Area-factor*s.FX) > 1e-12 {
			t.Fatalf("area %v does not match ((b-a)/n)·f(x) = %v", s.Area, factor*s.FX)
		}
		areaSum += s.Area
	}
	if math.Abs(areaSum-res.Base) > 1e-9 {
		t.Fatalf("sum of areas %v does not reproduce the base estimate %v", areaSum, res.Base)
	}
}
