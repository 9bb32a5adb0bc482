// jobshop/jobshop.go
// Package: jobshop
//
// Package jobshop simulates a stochastic job shop. Every job consists of
// a fixed number of elements processed in order; each element is
// assigned to the machine that finishes it earliest (greedy ECT) or to a
// random machine (FIFO), using a job-by-machine matrix of processing
// rates. The outcome of one run is the makespan plus the full
// assignment trace.
package jobshop

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// RateMode selects how the processing-rate matrix is obtained.
type RateMode int

const (
	// RateManual uses the caller-supplied matrix; missing cells become 1.
	RateManual RateMode = iota
	// RateMixed uses the caller-supplied matrix; missing or non-positive
	// cells are redrawn uniformly in [RateMin, RateMax].
	RateMixed
	// RateContinuous draws every cell uniformly in [RateMin, RateMax].
	RateContinuous
	// RateDiscrete picks every cell uniformly from DiscreteRates.
	RateDiscrete
)

func (m RateMode) String() string {
	switch m {
	case RateMixed:
		return "mixed"
	case RateContinuous:
		return "random-continuous"
	case RateDiscrete:
		return "random-discrete"
	default:
		return "manual"
	}
}

// ParseRateMode maps a user-supplied mode name to a RateMode.
func ParseRateMode(s string) (RateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return RateManual, nil
	case "mixed":
		return RateMixed, nil
	case "", "random-continuous", "continuous":
		return RateContinuous, nil
	case "random-discrete", "discrete":
		return RateDiscrete, nil
	}
	return RateManual, fmt.Errorf("unknown rate mode %q", s)
}

// Sequencing selects the machine-assignment rule.
type Sequencing int

const (
	// SequenceGreedyECT assigns each element to the machine with the
	// earliest completion time.
	SequenceGreedyECT Sequencing = iota
	// SequenceFIFORandom assigns each element to a uniformly random
	// machine, ignoring rates for the selection.
	SequenceFIFORandom
)

func (s Sequencing) String() string {
	if s == SequenceFIFORandom {
		return "fifo-random"
	}
	return "greedy-ect"
}

// ParseSequencing maps a user-supplied rule name to a Sequencing.
func ParseSequencing(s string) (Sequencing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "greedy-ect", "greedy", "ect":
		return SequenceGreedyECT, nil
	case "fifo-random", "fifo":
		return SequenceFIFORandom, nil
	}
	return SequenceGreedyECT, fmt.Errorf("unknown sequencing mode %q", s)
}

// DefaultDiscreteRates is the fixed rate set used by RateDiscrete when
// none is configured, in units per hour.
var DefaultDiscreteRates = []float64{5, 10, 15}

// Config parameterizes one scheduling run. Manual supplies the rate
// matrix for RateManual and RateMixed; a NaN cell marks a value the
// caller could not parse.
type Config struct {
	NumJobs        int         `json:"num_jobs"`
	NumMachines    int         `json:"num_machines"`
	ElementsPerJob int         `json:"elements_per_job"`
	RateMode       RateMode    `json:"-"`
	RateMin        float64     `json:"rate_min"`
	RateMax        float64     `json:"rate_max"`
	DiscreteRates  []float64   `json:"discrete_rates,omitempty"`
	Manual         [][]float64 `json:"manual,omitempty"`
	Sequencing     Sequencing  `json:"-"`
}

// Validate checks the constructor preconditions.
func (c Config) Validate() error {
	if c.NumJobs < 1 {
		return errors.New("num jobs must be >= 1")
	}
	if c.NumMachines < 1 {
		return errors.New("num machines must be >= 1")
	}
	if c.ElementsPerJob < 1 {
		return errors.New("elements per job must be >= 1")
	}
	if c.RateMode == RateMixed || c.RateMode == RateContinuous {
		if c.RateMin <= 0 || c.RateMax < c.RateMin {
			return fmt.Errorf("invalid rate range [%v,%v]", c.RateMin, c.RateMax)
		}
	}
	return nil
}

// Operation is one row of the assignment trace. Machine, Job and
// Element are zero-based; times are hours. Order is the global sequence
// in which operations were placed.
type Operation struct {
	Machine int     `json:"machine"`
	Job     int     `json:"job"`
	Element int     `json:"element"`
	Start   float64 `json:"start"`
	Finish  float64 `json:"finish"`
	Order   int     `json:"order"`
}

// Result is the outcome of one run: the makespan, the append-only
// operation trace and the realized rate matrix. A makespan of +Inf
// means a zero-rate machine was chosen under FIFO sequencing; callers
// must report it, not reject it.
type Result struct {
	Makespan float64     `json:"makespan"`
	Trace    []Operation `json:"trace"`
	Rates    [][]float64 `json:"rates"`
}

// Scheduler executes one list-scheduling run over a generated or
// supplied rate matrix. One instance per run; the loads vector is owned
// exclusively by that run.
type Scheduler struct {
	cfg Config
	rng *rand.Rand
}

// New validates cfg and returns a scheduler bound to the supplied
// generator.
func New(cfg Config, rng *rand.Rand) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{cfg: cfg, rng: rng}, nil
}

// Run builds the rate matrix and assigns every (job, element) pair in
// job-major, element-minor order. The assignment rule never reorders
// operations already placed, so the result is a heuristic, not an
// optimum.
func (s *Scheduler) Run() Result {
	rates := s.buildRates()
	loads := make([]float64, s.cfg.NumMachines)
	trace := make([]Operation, 0, s.cfg.NumJobs*s.cfg.ElementsPerJob)

	order := 0
	for job := 0; job < s.cfg.NumJobs; job++ {
		for elem := 0; elem < s.cfg.ElementsPerJob; elem++ {
			machine := s.pickMachine(rates[job], loads)
			start := loads[machine]
			finish := start + procTime(rates[job][machine])
			trace = append(trace, Operation{
				Machine: machine,
				Job:     job,
				Element: elem,
				Start:   start,
				Finish:  finish,
				Order:   order,
			})
			loads[machine] = finish
			order++
		}
	}

	makespan := 0.0
	for _, load := range loads {
		if load > makespan {
			makespan = load
		}
	}
	return Result{Makespan: makespan, Trace: trace, Rates: rates}
}

// procTime converts a processing rate to hours per element. A rate of
// zero or less means the machine cannot process the job at all.
func procTime(rate float64) float64 {
	if rate > 0 {
		return 1 / rate
	}
	return math.Inf(1)
}

// pickMachine applies the sequencing rule for one element. Greedy ECT
// takes the stable minimum of the candidate finish times, so ties go to
// the lowest machine index; FIFO draws the index uniformly and uses the
// machine's rate only for timing.
func (s *Scheduler) pickMachine(jobRates, loads []float64) int {
	if s.cfg.Sequencing == SequenceFIFORandom {
		return s.rng.Intn(s.cfg.NumMachines)
	}
	best := 0
	bestFinish := loads[0] + procTime(jobRates[0])
	for m := 1; m < s.cfg.NumMachines; m++ {
		finish := loads[m] + procTime(jobRates[m])
		if finish < bestFinish {
			best = m
			bestFinish = finish
		}
	}
	return best
}

// buildRates realizes the NumJobs x NumMachines rate matrix per the
// configured mode. The returned matrix is never aliased to cfg.Manual.
func (s *Scheduler) buildRates() [][]float64 {
	rates := make([][]float64, s.cfg.NumJobs)
	for job := range rates {
		rates[job] = make([]float64, s.cfg.NumMachines)
		for m := range rates[job] {
			rates[job][m] = s.cellRate(job, m)
		}
	}
	return rates
}

func (s *Scheduler) cellRate(job, m int) float64 {
	switch s.cfg.RateMode {
	case RateManual:
		v, ok := s.manualCell(job, m)
		if !ok {
			return 1
		}
		return v
	case RateMixed:
		v, ok := s.manualCell(job, m)
		if !ok || v <= 0 {
			return s.uniformRate()
		}
		return v
	case RateDiscrete:
		set := s.cfg.DiscreteRates
		if len(set) == 0 {
			set = DefaultDiscreteRates
		}
		return set[s.rng.Intn(len(set))]
	default:
		return s.uniformRate()
	}
}

// manualCell reads a caller-supplied cell; missing rows, short rows and
// NaN cells report !ok.
func (s *Scheduler) manualCell(job, m int) (float64, bool) {
	if job >= len(s.cfg.Manual) || m >= len(s.cfg.Manual[job]) {
		return 0, false
	}
	v := s.cfg.Manual[job][m]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (s *Scheduler) uniformRate() float64 {
	return s.cfg.RateMin + (s.cfg.RateMax-s.cfg.RateMin)*s.rng.Float64()
}
