// cmd/simulacion/root.go
package simulacion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the simulacion application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "simulacion",
	Short: "Monte Carlo simulation suite",
	Long:  `simulacion estimates expected values of stochastic processes: the mean time to failure of a redundant component system, a definite integral, and the makespan of a stochastic job shop.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
