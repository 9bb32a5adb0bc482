// Package main is the entry point of the simulacion CLI, a Monte Carlo
// simulation suite covering mean-time-to-failure estimation, definite
// integral estimation and stochastic job-shop scheduling.
package main

import (
	"github.com/lillysepulveda9/simulacion-de-sistema/cmd/simulacion"
)

func main() {
	simulacion.Execute()
}
