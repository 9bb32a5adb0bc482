// cmd/simulacion/jobshop_experiment.go
package simulacion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lillysepulveda9/simulacion-de-sistema/harness"
)

var (
	experimentCfgFile     string
	experimentSimulations int
	experimentOutputDir   string
	experimentSeed        int64
	experimentPlain       bool
	experimentDebug       bool
)

// jobshopExperimentCmd implements 'jobshop experiment': the full suite
// of independent scheduling runs, one CSV artifact per run, with an
// aggregate makespan summary at the end.
var jobshopExperimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run a suite of scheduling simulations and aggregate their makespans",
	Long:  `The 'experiment' subcommand runs the scheduler repeatedly with fixed or randomized job/machine/element counts, persists each run's trace to its own CSV artifact in the output directory, and reports the mean, minimum and maximum makespan across all runs. Suite parameters come from a JSON config file; flags override its simulation count, output directory and seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSuiteConfig(viper.GetString("experiment-config"))
		if err != nil {
			return err
		}
		if experimentSimulations > 0 {
			cfg.Simulations = experimentSimulations
		}
		if experimentOutputDir != "" {
			cfg.OutputDir = experimentOutputDir
		}
		if experimentSeed != 0 {
			cfg.Seed = experimentSeed
		}
		if experimentDebug {
			pp.Println(cfg)
		}

		var res harness.SuiteResult
		if experimentPlain {
			cfg.Progress = func(r harness.RunResult) {
				fmt.Println(labelStyle.Render(runLine(r)))
			}
			res, err = harness.RunSuite(context.Background(), cfg)
		} else {
			res, err = runSuiteWithProgress(cfg)
		}
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Experiment summary"))
		fmt.Printf("%s %d runs into %s\n", headerStyle.Render("Completed:"), len(res.Runs), cfg.OutputDir)
		fmt.Printf("%s mean %s  min %s  max %s (hs)\n",
			headerStyle.Render("Makespan:"),
			formatHours(res.Summary.Mean), formatHours(res.Summary.Min), formatHours(res.Summary.Max))
		return nil
	},
}

func init() {
	jobshopCmd.AddCommand(jobshopExperimentCmd)

	jobshopExperimentCmd.Flags().StringVarP(&experimentCfgFile, "config", "c", "experiment.json", "suite config file")
	jobshopExperimentCmd.Flags().IntVarP(&experimentSimulations, "simulations", "n", 0, "override the number of runs")
	jobshopExperimentCmd.Flags().StringVarP(&experimentOutputDir, "output-dir", "o", "", "override the artifact directory")
	jobshopExperimentCmd.Flags().Int64Var(&experimentSeed, "seed", 0, "override the suite seed")
	jobshopExperimentCmd.Flags().BoolVar(&experimentPlain, "plain", false, "print one line per run instead of the progress UI")
	jobshopExperimentCmd.Flags().BoolVar(&experimentDebug, "debug", false, "dump the resolved suite config")

	viper.BindPFlag("experiment-config", jobshopExperimentCmd.Flags().Lookup("config"))
}

// loadSuiteConfig reads and parses the suite config file. A missing
// file is not an error: the suite then runs entirely on defaults plus
// flag overrides.
func loadSuiteConfig(path string) (harness.SuiteConfig, error) {
	cfg := harness.SuiteConfig{
		Simulations: 10,
		Randomize:   true,
		RateMode:    "random-continuous",
		Sequencing:  "greedy-ect",
		OutputDir:   "resultados",
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config JSON: %w", err)
	}
	return cfg, nil
}

// runLine formats the per-run summary line.
func runLine(r harness.RunResult) string {
	line := fmt.Sprintf("run %02d: %d jobs, %d machines, %d elements -> makespan %s hs",
		r.Index, r.Jobs, r.Machines, r.Elements, formatHours(r.Makespan))
	if r.Err != "" {
		line += " (trace not written: " + r.Err + ")"
	}
	return line
}
