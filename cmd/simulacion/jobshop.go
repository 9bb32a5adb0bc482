// cmd/simulacion/jobshop.go
package simulacion

import (
	"github.com/spf13/cobra"
)

// jobshopCmd represents the 'jobshop' command group and acts as a
// namespace for the single-run scheduler and the experiment suite.
var jobshopCmd = &cobra.Command{
	Use:   "jobshop",
	Short: "Group commands for the job-shop scheduling simulator",
	Long:  `The 'jobshop' command groups the subcommands of the stochastic job-shop simulator: 'run' executes one scheduling run, 'experiment' runs a whole suite and aggregates the makespans. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(jobshopCmd)
}
