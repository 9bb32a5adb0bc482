package jobshop

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestConfig_Validate(t *testing.T) {
	base := Config{NumJobs: 2, NumMachines: 2, ElementsPerJob: 1, RateMode: RateContinuous, RateMin: 5, RateMax: 15}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero jobs", func(c *Config) { c.NumJobs = 0 }},
		{"zero machines", func(c *Config) { c.NumMachines = 0 }},
		{"zero elements", func(c *Config) { c.ElementsPerJob = 0 }},
		{"zero rate min", func(c *Config) { c.RateMin = 0 }},
		{"inverted rate range", func(c *Config) { c.RateMin = 15; c.RateMax = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}

	// Manual mode carries its own matrix, so the rate range is unused.
	manual := Config{NumJobs: 1, NumMachines: 1, ElementsPerJob: 1, RateMode: RateManual}
	if err := manual.Validate(); err != nil {
		t.Fatalf("manual mode should not require a rate range: %v", err)
	}
}

func TestGreedyECT_KnownSchedule(t *testing.T) {
	cfg := Config{
		NumJobs:        2,
		NumMachines:    2,
		ElementsPerJob: 1,
		RateMode:       RateManual,
		Manual:         [][]float64{{2, 1}, {1, 2}},
		Sequencing:     SequenceGreedyECT,
	}
	sched, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	res := sched.Run()

	// Job 0 candidates: 0+1/2=0.5 on machine 0, 0+1/1=1.0 on machine 1.
	// Job 1 candidates: 0.5+1/1=1.5 on machine 0, 0+1/2=0.5 on machine 1.
	want := []Operation{
		{Machine: 0, Job: 0, Element: 0, Start: 0, Finish: 0.5, Order: 0},
		{Machine: 1, Job: 1, Element: 0, Start: 0, Finish: 0.5, Order: 1},
	}
	if !reflect.DeepEqual(res.Trace, want) {
		t.Fatalf("trace = %+v, want %+v", res.Trace, want)
	}
	if res.Makespan != 0.5 {
		t.Fatalf("makespan = %v, want 0.5", res.Makespan)
	}
}

func TestGreedyECT_TieBreaksToLowestMachine(t *testing.T) {
	cfg := Config{
		NumJobs:        1,
		NumMachines:    3,
		ElementsPerJob: 1,
		RateMode:       RateManual,
		Manual:         [][]float64{{4, 4, 4}},
		Sequencing:     SequenceGreedyECT,
	}
	sched, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	res := sched.Run()
	if res.Trace[0].Machine != 0 {
		t.Fatalf("equal candidates must resolve to machine 0, got %d", res.Trace[0].Machine)
	}
}

func TestGreedyECT_NeverPicksZeroRateMachine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		machines := rapid.IntRange(2, 5).Draw(rt, "machines")
		dead := rapid.IntRange(0, machines-1).Draw(rt, "dead")
		jobs := rapid.IntRange(1, 4).Draw(rt, "jobs")

		manual := make([][]float64, jobs)
		for j := range manual {
			manual[j] = make([]float64, machines)
			for m := range manual[j] {
				if m == dead {
					manual[j][m] = -rapid.Float64Range(0, 3).Draw(rt, "deadRate")
				} else {
					manual[j][m] = rapid.Float64Range(0.5, 10).Draw(rt, "rate")
				}
			}
		}
		cfg := Config{
			NumJobs:        jobs,
			NumMachines:    machines,
			ElementsPerJob: rapid.IntRange(1, 3).Draw(rt, "elements"),
			RateMode:       RateManual,
			Manual:         manual,
			Sequencing:     SequenceGreedyECT,
		}
		sched, err := New(cfg, rand.New(rand.NewSource(1)))
		if err != nil {
			rt.Fatal(err)
		}
		res := sched.Run()
		for _, op := range res.Trace {
			if op.Machine == dead {
				rt.Fatalf("operation %+v assigned to the unusable machine %d", op, dead)
			}
		}
		if math.IsInf(res.Makespan, 1) {
			rt.Fatalf("greedy run produced an infinite makespan")
		}
	})
}

func TestFIFORandom_ZeroRatePropagatesInfinity(t *testing.T) {
	cfg := Config{
		NumJobs:        1,
		NumMachines:    1,
		ElementsPerJob: 1,
		RateMode:       RateManual,
		Manual:         [][]float64{{0}},
		Sequencing:     SequenceFIFORandom,
	}
	sched, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	res := sched.Run()
	if !math.IsInf(res.Makespan, 1) {
		t.Fatalf("makespan = %v, want +Inf", res.Makespan)
	}
	if !math.IsInf(res.Trace[0].Finish, 1) {
		t.Fatalf("finish = %v, want +Inf", res.Trace[0].Finish)
	}
}

func TestMakespan_MonotoneInElementsPerJob(t *testing.T) {
	manual := [][]float64{{2, 1}, {1, 2}}
	run := func(elements int) float64 {
		cfg := Config{
			NumJobs:        2,
			NumMachines:    2,
			ElementsPerJob: elements,
			RateMode:       RateManual,
			Manual:         manual,
			Sequencing:     SequenceGreedyECT,
		}
		sched, err := New(cfg, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatal(err)
		}
		return sched.Run().Makespan
	}

	prev := run(1)
	for elements := 2; elements <= 6; elements++ {
		cur := run(elements)
		if cur < prev {
			t.Fatalf("makespan dropped from %v to %v at %d elements per job", prev, cur, elements)
		}
		prev = cur
	}
}

func TestRun_MachineLoadsNonDecreasing(t *testing.T) {
	cfg := Config{NumJobs: 10, NumMachines: 4, ElementsPerJob: 3, RateMode: RateContinuous, RateMin: 5, RateMax: 15, Sequencing: SequenceGreedyECT}
	sched, err := New(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	res := sched.Run()
	lastFinish := make(map[int]float64)
	for _, op := range res.Trace {
		if op.Start < lastFinish[op.Machine] {
			t.Fatalf("operation %+v starts before machine %d is free at %v", op, op.Machine, lastFinish[op.Machine])
		}
		if op.Finish < op.Start {
			t.Fatalf("operation %+v finishes before it starts", op)
		}
		lastFinish[op.Machine] = op.Finish
	}
	if len(res.Trace) != cfg.NumJobs*cfg.ElementsPerJob {
		t.Fatalf("trace has %d operations, want %d", len(res.Trace), cfg.NumJobs*cfg.ElementsPerJob)
	}
}

func TestRun_IdenticalSeedsIdenticalTraces(t *testing.T) {
	cfg := Config{NumJobs: 8, NumMachines: 3, ElementsPerJob: 2, RateMode: RateDiscrete, Sequencing: SequenceFIFORandom}
	run := func() Result {
		sched, err := New(cfg, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatal(err)
		}
		return sched.Run()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical seeds produced different results")
	}
}

func TestBuildRates_Modes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	t.Run("manual fills missing cells with 1", func(t *testing.T) {
		cfg := Config{NumJobs: 2, NumMachines: 3, ElementsPerJob: 1, RateMode: RateManual,
			Manual: [][]float64{{5, math.NaN()}}}
		sched, err := New(cfg, rng)
		if err != nil {
			t.Fatal(err)
		}
		rates := sched.buildRates()
		want := [][]float64{{5, 1, 1}, {1, 1, 1}}
		if !reflect.DeepEqual(rates, want) {
			t.Fatalf("rates = %v, want %v", rates, want)
		}
	})

	t.Run("mixed redraws missing and non-positive cells", func(t *testing.T) {
		cfg := Config{NumJobs: 1, NumMachines: 3, ElementsPerJob: 1, RateMode: RateMixed,
			RateMin: 5, RateMax: 15, Manual: [][]float64{{8, 0, math.NaN()}}}
		sched, err := New(cfg, rng)
		if err != nil {
			t.Fatal(err)
		}
		rates := sched.buildRates()
		if rates[0][0] != 8 {
			t.Fatalf("valid manual cell must survive, got %v", rates[0][0])
		}
		for _, m := range []int{1, 2} {
			if rates[0][m] < 5 || rates[0][m] > 15 {
				t.Fatalf("redrawn cell %v outside [5,15]", rates[0][m])
			}
		}
	})

	t.Run("continuous stays inside the range", func(t *testing.T) {
		cfg := Config{NumJobs: 4, NumMachines: 4, ElementsPerJob: 1, RateMode: RateContinuous, RateMin: 5, RateMax: 15}
		sched, err := New(cfg, rng)
		if err != nil {
			t.Fatal(err)
		}
		for _, row := range sched.buildRates() {
			for _, v := range row {
				if v < 5 || v > 15 {
					t.Fatalf("rate %v outside [5,15]", v)
				}
			}
		}
	})

	t.Run("discrete draws from the default set", func(t *testing.T) {
		cfg := Config{NumJobs: 4, NumMachines: 4, ElementsPerJob: 1, RateMode: RateDiscrete}
		sched, err := New(cfg, rng)
		if err != nil {
			t.Fatal(err)
		}
		allowed := map[float64]bool{5: true, 10: true, 15: true}
		for _, row := range sched.buildRates() {
			for _, v := range row {
				if !allowed[v] {
					t.Fatalf("rate %v not in the discrete set", v)
				}
			}
		}
	})
}

func TestParseModes(t *testing.T) {
	if m, err := ParseRateMode("Random-Discrete"); err != nil || m != RateDiscrete {
		t.Fatalf("ParseRateMode: %v, %v", m, err)
	}
	if _, err := ParseRateMode("adaptive"); err == nil {
		t.Fatal("ParseRateMode should reject unknown modes")
	}
	if s, err := ParseSequencing("FIFO"); err != nil || s != SequenceFIFORandom {
		t.Fatalf("ParseSequencing: %v, %v", s, err)
	}
	if _, err := ParseSequencing("optimal"); err == nil {
		t.Fatal("ParseSequencing should reject unknown modes")
	}
}
