// harness/results.go
// Package: harness
package harness

import "time"

// summarize reduces the run rows to the mean/min/max makespan.
func summarize(runs []RunResult) Summary {
	if len(runs) == 0 {
		return Summary{}
	}
	s := Summary{Min: runs[0].Makespan, Max: runs[0].Makespan}
	var sum float64
	for _, r := range runs {
		sum += r.Makespan
		if r.Makespan < s.Min {
			s.Min = r.Makespan
		}
		if r.Makespan > s.Max {
			s.Max = r.Makespan
		}
	}
	s.Mean = sum / float64(len(runs))
	return s
}

// buildSuiteResult packs everything with a timestamp.
func buildSuiteResult(cfg SuiteConfig, runs []RunResult) SuiteResult {
	return SuiteResult{
		Config:      cfg,
		Runs:        runs,
		Summary:     summarize(runs),
		GeneratedAt: time.Now(),
	}
}
