// harness/runner.go
// Package: harness
package harness

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/lillysepulveda9/simulacion-de-sistema/jobshop"
)

// RunSuite is the single exported entrypoint. It executes
// cfg.Simulations independent scheduling runs, writes one trace
// artifact per run into cfg.OutputDir and returns the collected rows
// plus the makespan summary. A failed artifact write is recorded on its
// run row and never aborts the suite; earlier artifacts are untouched
// because every run writes its own file.
func RunSuite(ctx context.Context, cfg SuiteConfig) (SuiteResult, error) {
	if cfg.Simulations < 1 {
		return SuiteResult{}, errors.New("at least one simulation is required")
	}
	if cfg.OutputDir == "" {
		return SuiteResult{}, errors.New("an output directory is required")
	}
	applyDefaults(&cfg)
	if cfg.Randomize {
		if cfg.JobsMin < 1 || cfg.JobsMax < cfg.JobsMin {
			return SuiteResult{}, fmt.Errorf("invalid jobs range [%d, %d]", cfg.JobsMin, cfg.JobsMax)
		}
		if cfg.MachinesMin < 1 || cfg.MachinesMax < cfg.MachinesMin {
			return SuiteResult{}, fmt.Errorf("invalid machines range [%d, %d]", cfg.MachinesMin, cfg.MachinesMax)
		}
		for _, e := range cfg.ElementsChoices {
			if e < 1 {
				return SuiteResult{}, fmt.Errorf("invalid elements choice %d", e)
			}
		}
	}

	rateMode, err := jobshop.ParseRateMode(cfg.RateMode)
	if err != nil {
		return SuiteResult{}, err
	}
	sequencing, err := jobshop.ParseSequencing(cfg.Sequencing)
	if err != nil {
		return SuiteResult{}, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return SuiteResult{}, fmt.Errorf("could not create output directory: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var runs []RunResult

	for i := 0; i < cfg.Simulations; i++ {
		if err := ctx.Err(); err != nil {
			return buildSuiteResult(cfg, runs), err
		}

		jobs, machines, elements := cfg.Jobs, cfg.Machines, cfg.Elements
		if cfg.Randomize {
			jobs = cfg.JobsMin + rng.Intn(cfg.JobsMax-cfg.JobsMin+1)
			machines = cfg.MachinesMin + rng.Intn(cfg.MachinesMax-cfg.MachinesMin+1)
			elements = cfg.ElementsChoices[rng.Intn(len(cfg.ElementsChoices))]
		}

		schedCfg := jobshop.Config{
			NumJobs:        jobs,
			NumMachines:    machines,
			ElementsPerJob: elements,
			RateMode:       rateMode,
			RateMin:        cfg.RateMin,
			RateMax:        cfg.RateMax,
			Sequencing:     sequencing,
		}
		sched, err := jobshop.New(schedCfg, rng)
		if err != nil {
			return buildSuiteResult(cfg, runs), err
		}
		res := sched.Run()

		row := RunResult{
			Index:    i,
			Jobs:     jobs,
			Machines: machines,
			Elements: elements,
			Makespan: res.Makespan,
		}
		path := filepath.Join(cfg.OutputDir, ArtifactName(i))
		if err := WriteTrace(path, res.Trace); err != nil {
			// Keep the makespan and surface the write failure on the row,
			// the way a failed trial stays visible without aborting the suite.
			row.Err = err.Error()
		} else {
			row.ArtifactPath = path
		}
		runs = append(runs, row)
		if cfg.Progress != nil {
			cfg.Progress(row)
		}
	}

	return buildSuiteResult(cfg, runs), nil
}

// applyDefaults fills the unset knobs with the reference
// parameterization: 10 runs of 20-30 jobs on 3-5 machines with 2-4
// elements per job, rates in [5,15] units/hour.
func applyDefaults(cfg *SuiteConfig) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Randomize {
		if cfg.JobsMin == 0 && cfg.JobsMax == 0 {
			cfg.JobsMin, cfg.JobsMax = 20, 30
		}
		if cfg.MachinesMin == 0 && cfg.MachinesMax == 0 {
			cfg.MachinesMin, cfg.MachinesMax = 3, 5
		}
		if len(cfg.ElementsChoices) == 0 {
			cfg.ElementsChoices = []int{2, 3, 4}
		}
	}
	if cfg.RateMin == 0 && cfg.RateMax == 0 {
		cfg.RateMin, cfg.RateMax = 5, 15
	}
}
