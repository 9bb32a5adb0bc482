// montecarlo/montecarlo.go
// Package: montecarlo
//
// Package montecarlo estimates the mean time to failure (MTTF) of a
// k-out-of-n redundant component system. Each experiment draws one
// lifetime per component, the system failure time is the k-th smallest
// lifetime, and the estimate is the average failure time across
// experiments. Three sampling schemes are supported: plain uniforms,
// antithetic pairs and Latin Hypercube Sampling.
package montecarlo

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Technique selects the variance-reduction scheme used to generate
// experiments.
type Technique int

const (
	// TechniqueNone draws independent integer-valued uniforms.
	TechniqueNone Technique = iota
	// TechniqueAntithetic processes experiments in complementary pairs
	// sharing one uniform vector.
	TechniqueAntithetic
	// TechniqueLHS stratifies every dimension across experiments.
	TechniqueLHS
)

// String returns the canonical name used on the CLI and in config files.
func (t Technique) String() string {
	switch t {
	case TechniqueAntithetic:
		return "antithetic"
	case TechniqueLHS:
		return "lhs"
	default:
		return "none"
	}
}

// ParseTechnique maps a user-supplied name to a Technique. Matching is
// case-insensitive so the boundary absorbs free-text input once instead
// of comparing strings inside the simulator.
func ParseTechnique(s string) (Technique, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "ninguna":
		return TechniqueNone, nil
	case "antithetic", "antiteticas":
		return TechniqueAntithetic, nil
	case "lhs", "stratified":
		return TechniqueLHS, nil
	}
	return TechniqueNone, fmt.Errorf("unknown variance-reduction technique %q", s)
}

// Config parameterizes one simulation. Bounds are the inclusive lifetime
// range in hours; OrderIndex is the 1-indexed rank of the lifetime at
// which the system fails (e.g. 4 of 5 panels for the satellite problem).
type Config struct {
	NumVariables   int       `json:"num_variables"`
	NumExperiments int       `json:"num_experiments"`
	OrderIndex     int       `json:"order_index"`
	LowerBound     int       `json:"lower_bound"`
	UpperBound     int       `json:"upper_bound"`
	Technique      Technique `json:"-"`
}

// Validate checks the constructor preconditions.
func (c Config) Validate() error {
	if c.NumVariables < 1 {
		return errors.New("num variables must be >= 1")
	}
	if c.NumExperiments < 1 {
		return errors.New("num experiments must be >= 1")
	}
	if c.OrderIndex < 1 || c.OrderIndex > c.NumVariables {
		return fmt.Errorf("order index must be in [1,%d]", c.NumVariables)
	}
	if c.LowerBound < 0 {
		return errors.New("lower bound must be >= 0")
	}
	if c.LowerBound >= c.UpperBound {
		return errors.New("lower bound must be < upper bound")
	}
	return nil
}

// Stats aggregates the failure-time sample.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	StdErr float64 `json:"std_err"`
}

// Simulator runs the full estimation on construction and retains the
// generated experiments for display and export. Instances are single
// use: one construction, one set of results.
type Simulator struct {
	cfg          Config
	rng          *rand.Rand
	experiments  [][]float64
	failureTimes []float64
	stats        Stats
}

// New validates cfg, generates all experiments with the supplied
// generator, extracts the order statistics and folds them into summary
// statistics. The generator is owned by the caller; passing a seeded
// source makes the whole run reproducible.
func New(cfg Config, rng *rand.Rand) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{cfg: cfg, rng: rng}
	s.generate()
	s.extract()
	s.stats = Summarize(s.failureTimes)
	return s, nil
}

// Results returns the sorted per-experiment lifetime vectors, the
// aggregate statistics and the per-experiment (or per-pair, under
// antithetic sampling) system failure times.
func (s *Simulator) Results() ([][]float64, Stats, []float64) {
	return s.experiments, s.stats, s.failureTimes
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config {
	return s.cfg
}

func (s *Simulator) generate() {
	switch s.cfg.Technique {
	case TechniqueAntithetic:
		s.generateAntithetic()
	case TechniqueLHS:
		s.generateLHS()
	default:
		s.generatePlain()
	}
}

// generatePlain draws integer-valued lifetimes uniformly in
// [LowerBound, UpperBound], both bounds inclusive.
func (s *Simulator) generatePlain() {
	span := s.cfg.UpperBound - s.cfg.LowerBound
	for i := 0; i < s.cfg.NumExperiments; i++ {
		exp := make([]float64, s.cfg.NumVariables)
		for j := range exp {
			exp[j] = float64(s.cfg.LowerBound + s.rng.Intn(span+1))
		}
		s.experiments = append(s.experiments, exp)
	}
}

// generateAntithetic draws one uniform vector per pair and produces the
// pair as lower+span*u and lower+span*(1-u). The complementary draws are
// negatively correlated, which shrinks the variance of the paired
// average. An odd trailing experiment falls back to an independent
// uniform draw.
func (s *Simulator) generateAntithetic() {
	lo := float64(s.cfg.LowerBound)
	span := float64(s.cfg.UpperBound - s.cfg.LowerBound)
	n := s.cfg.NumExperiments
	for i := 0; i+1 < n; i += 2 {
		a := make([]float64, s.cfg.NumVariables)
		b := make([]float64, s.cfg.NumVariables)
		for j := 0; j < s.cfg.NumVariables; j++ {
			u := s.rng.Float64()
			a[j] = lo + span*u
			b[j] = lo + span*(1-u)
		}
		s.experiments = append(s.experiments, a, b)
	}
	if n%2 == 1 {
		exp := make([]float64, s.cfg.NumVariables)
		for j := range exp {
			exp[j] = lo + span*s.rng.Float64()
		}
		s.experiments = append(s.experiments, exp)
	}
}

// generateLHS partitions [0,1) into NumExperiments equal strata per
// dimension and permutes the stratum order independently per dimension,
// so every dimension's marginal sample hits each stratum exactly once.
func (s *Simulator) generateLHS() {
	lo := float64(s.cfg.LowerBound)
	span := float64(s.cfg.UpperBound - s.cfg.LowerBound)
	n := s.cfg.NumExperiments

	strata := make([][]int, s.cfg.NumVariables)
	for j := range strata {
		strata[j] = s.rng.Perm(n)
	}

	for i := 0; i < n; i++ {
		exp := make([]float64, s.cfg.NumVariables)
		for j := 0; j < s.cfg.NumVariables; j++ {
			u := (float64(strata[j][i]) + s.rng.Float64()) / float64(n)
			exp[j] = lo + span*u
		}
		s.experiments = append(s.experiments, exp)
	}
}

// extract sorts each experiment ascending and pulls the OrderIndex-th
// smallest lifetime as the system failure time. Under antithetic
// sampling each pair contributes the arithmetic mean of its two order
// statistics; both members are sorted independently before extraction.
func (s *Simulator) extract() {
	k := s.cfg.OrderIndex - 1
	for _, exp := range s.experiments {
		sort.Float64s(exp)
	}
	if s.cfg.Technique != TechniqueAntithetic {
		for _, exp := range s.experiments {
			s.failureTimes = append(s.failureTimes, exp[k])
		}
		return
	}
	n := len(s.experiments)
	for i := 0; i+1 < n; i += 2 {
		s.failureTimes = append(s.failureTimes, (s.experiments[i][k]+s.experiments[i+1][k])/2)
	}
	if n%2 == 1 {
		s.failureTimes = append(s.failureTimes, s.experiments[n-1][k])
	}
}
