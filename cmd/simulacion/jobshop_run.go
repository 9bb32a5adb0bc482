// cmd/simulacion/jobshop_run.go
package simulacion

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lillysepulveda9/simulacion-de-sistema/harness"
	"github.com/lillysepulveda9/simulacion-de-sistema/jobshop"
)

var (
	runJobs       int
	runMachines   int
	runElements   int
	runRateMode   string
	runRateMin    float64
	runRateMax    float64
	runSequencing string
	runSeed       int64
	runShowTrace  bool
	runOutput     string
	runRatesFile  string
)

// jobshopRunCmd implements 'jobshop run': one scheduling run over a
// freshly generated rate matrix.
var jobshopRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one scheduling run and print its makespan and trace",
	Long:  `The 'run' subcommand generates a job-by-machine processing-rate matrix, assigns every (job, element) operation with the selected sequencing rule (greedy earliest completion time, or FIFO over random machines), and prints the resulting makespan, rate matrix and assignment trace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rateMode, err := jobshop.ParseRateMode(runRateMode)
		if err != nil {
			return err
		}
		sequencing, err := jobshop.ParseSequencing(runSequencing)
		if err != nil {
			return err
		}
		var manual [][]float64
		if runRatesFile != "" {
			manual, err = readRateMatrix(runRatesFile)
			if err != nil {
				return err
			}
		}
		cfg := jobshop.Config{
			NumJobs:        runJobs,
			NumMachines:    runMachines,
			ElementsPerJob: runElements,
			RateMode:       rateMode,
			RateMin:        runRateMin,
			RateMax:        runRateMax,
			Manual:         manual,
			Sequencing:     sequencing,
		}
		sched, err := jobshop.New(cfg, rand.New(rand.NewSource(seedOrNow(runSeed))))
		if err != nil {
			return err
		}
		res := sched.Run()
		printScheduleResult(res, runShowTrace)

		if runOutput != "" {
			if err := harness.WriteTrace(runOutput, res.Trace); err != nil {
				return err
			}
			fmt.Println(faintStyle.Render("Trace written to " + runOutput))
		}
		return nil
	},
}

func init() {
	jobshopCmd.AddCommand(jobshopRunCmd)

	jobshopRunCmd.Flags().IntVar(&runJobs, "jobs", 25, "number of jobs")
	jobshopRunCmd.Flags().IntVar(&runMachines, "machines", 4, "number of machines")
	jobshopRunCmd.Flags().IntVar(&runElements, "elements", 3, "elements per job")
	jobshopRunCmd.Flags().StringVar(&runRateMode, "rate-mode", "random-continuous", "rate matrix mode: manual, mixed, random-continuous or random-discrete")
	jobshopRunCmd.Flags().Float64Var(&runRateMin, "rate-min", 5, "minimum processing rate (units/hour)")
	jobshopRunCmd.Flags().Float64Var(&runRateMax, "rate-max", 15, "maximum processing rate (units/hour)")
	jobshopRunCmd.Flags().StringVar(&runSequencing, "sequencing", "greedy-ect", "sequencing rule: greedy-ect or fifo-random")
	jobshopRunCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 seeds from the clock)")
	jobshopRunCmd.Flags().BoolVar(&runShowTrace, "trace", false, "print the full assignment trace")
	jobshopRunCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the trace to this CSV file")
	jobshopRunCmd.Flags().StringVar(&runRatesFile, "rates", "", "CSV file with a manual rate matrix (manual and mixed modes)")
}

// readRateMatrix loads a caller-supplied rate table. Cells that do not
// parse as numbers become NaN so the scheduler's manual/mixed back-fill
// rules apply to them.
func readRateMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rate matrix: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse rate matrix: %w", err)
	}

	matrix := make([][]float64, len(rows))
	for i, row := range rows {
		matrix[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				v = math.NaN()
			}
			matrix[i][j] = v
		}
	}
	return matrix, nil
}
