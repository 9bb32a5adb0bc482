// harness/types.go
// Package: harness
//
// Package harness runs the job-shop scheduler repeatedly, persists one
// trace artifact per run and reduces the collected makespans to an
// aggregate summary.
package harness

import "time"

// SuiteConfig configures the entire experiment suite.
type SuiteConfig struct {
	// Number of independent scheduling runs.
	Simulations int `json:"simulations"`

	// When true, job/machine/element counts are redrawn per run from
	// the ranges below; otherwise the fixed counts are used for every run.
	Randomize bool `json:"randomize"`

	// Fixed counts (Randomize = false).
	Jobs     int `json:"jobs"`
	Machines int `json:"machines"`
	Elements int `json:"elements"`

	// Randomization ranges (Randomize = true). Counts are drawn
	// uniformly; elements come from a small discrete set.
	JobsMin         int   `json:"jobs_min"`
	JobsMax         int   `json:"jobs_max"`
	MachinesMin     int   `json:"machines_min"`
	MachinesMax     int   `json:"machines_max"`
	ElementsChoices []int `json:"elements_choices"`

	// Scheduler settings, parsed at the boundary into the jobshop enums.
	RateMode   string  `json:"rate_mode"`
	RateMin    float64 `json:"rate_min"`
	RateMax    float64 `json:"rate_max"`
	Sequencing string  `json:"sequencing"`

	// Directory receiving one CSV trace per run.
	OutputDir string `json:"output_dir"`

	// Seed for the suite-wide generator; 0 means seed from the clock.
	Seed int64 `json:"seed"`

	// Progress, when set, is invoked after every run with its result.
	Progress func(RunResult) `json:"-"`
}

// RunResult is one row of the suite: the realized counts, the makespan
// and the artifact holding the full trace. Err carries an artifact
// write failure; the run itself cannot fail.
type RunResult struct {
	Index        int     `json:"index"`
	Jobs         int     `json:"jobs"`
	Machines     int     `json:"machines"`
	Elements     int     `json:"elements"`
	Makespan     float64 `json:"makespan"`
	ArtifactPath string  `json:"artifact_path,omitempty"`
	Err          string  `json:"error,omitempty"`
}

// Summary reduces the makespans of a suite. An infinite makespan from a
// FIFO run on an unusable machine propagates into Mean and Max.
type Summary struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// SuiteResult is the top-level artifact returned by RunSuite.
type SuiteResult struct {
	Config      SuiteConfig `json:"config"`
	Runs        []RunResult `json:"runs"`
	Summary     Summary     `json:"summary"`
	GeneratedAt time.Time   `json:"generated_at"`
}
