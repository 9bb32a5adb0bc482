// cmd/simulacion/render.go
package simulacion

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lillysepulveda9/simulacion-de-sistema/jobshop"
	"github.com/lillysepulveda9/simulacion-de-sistema/montecarlo"
)

var (
	titleStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// seedOrNow resolves the --seed flag: 0 means seed from the clock.
func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// printMTTFResults renders the per-experiment lifetime table with the
// system failure time appended as the last column, then the aggregate
// statistics. Antithetic pairs share one failure value across both
// rows. All values are hours, rounded to two decimals for display.
func printMTTFResults(sim *montecarlo.Simulator) {
	experiments, stats, failures := sim.Results()
	cfg := sim.Config()

	fmt.Println(titleStyle.Render("MTTF simulation"))

	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-5s", "#"))
	for i := 0; i < cfg.NumVariables; i++ {
		header.WriteString(fmt.Sprintf("%12s", fmt.Sprintf("Panel %d", i+1)))
	}
	header.WriteString(fmt.Sprintf("%16s", "System (xi)"))
	fmt.Println(headerStyle.Render(header.String()))

	for i, exp := range experiments {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%-5d", i+1))
		for _, v := range exp {
			row.WriteString(fmt.Sprintf("%12.2f", montecarlo.Round2(v)))
		}
		// The failure slice holds one value per pair under antithetic,
		// half the length of the experiment list.
		idx := i
		if cfg.Technique == montecarlo.TechniqueAntithetic {
			idx = i / 2
		}
		row.WriteString(fmt.Sprintf("%16.2f", montecarlo.Round2(failures[idx])))
		fmt.Println(labelStyle.Render(row.String()))
	}

	fmt.Println()
	fmt.Printf("%s %.2f hs\n", headerStyle.Render("Mean system failure time:"), montecarlo.Round2(stats.Mean))
	fmt.Printf("%s %.2f hs\n", headerStyle.Render("Sample standard deviation:"), montecarlo.Round2(stats.StdDev))
	fmt.Printf("%s %.2f hs\n", headerStyle.Render("Standard error:"), montecarlo.Round2(stats.StdErr))
}

// printScheduleResult renders the makespan, the realized rate matrix
// and optionally the full assignment trace with times rounded to three
// decimals.
func printScheduleResult(res jobshop.Result, showTrace bool) {
	fmt.Println(titleStyle.Render("Job-shop schedule"))
	fmt.Printf("%s %s hs\n", headerStyle.Render("Makespan:"), formatHours(res.Makespan))

	fmt.Println(headerStyle.Render("Rate matrix (units/hour):"))
	for job, row := range res.Rates {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("  Job %-3d", job+1))
		for _, rate := range row {
			b.WriteString(fmt.Sprintf("%10.2f", rate))
		}
		fmt.Println(labelStyle.Render(b.String()))
	}

	if !showTrace {
		fmt.Println(faintStyle.Render(fmt.Sprintf("  (%d operations traced; use --trace to print them)", len(res.Trace))))
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-9s%-6s%-9s%12s%12s%7s", "Machine", "Job", "Element", "Start", "Finish", "Order")))
	for _, op := range res.Trace {
		fmt.Println(labelStyle.Render(fmt.Sprintf("%-9d%-6d%-9d%12s%12s%7d",
			op.Machine+1, op.Job+1, op.Element+1, formatHours(op.Start), formatHours(op.Finish), op.Order)))
	}
}

// formatHours prints a time with three decimals, keeping an infinite
// value recognizable instead of normalizing it away.
func formatHours(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%.3f", v)
}
