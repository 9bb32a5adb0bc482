// harness/artifact.go
// Package: harness
package harness

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/lillysepulveda9/simulacion-de-sistema/jobshop"
)

// ArtifactName returns the per-run file name, run index zero-padded to
// two digits so the directory listing sorts in run order.
func ArtifactName(index int) string {
	return fmt.Sprintf("corrida_%02d.csv", index)
}

// WriteTrace persists one run's operation trace as a flat CSV table.
// Machine, job and element indices are written 1-based for display;
// start and finish times are rounded to three decimals. An infinite
// finish time (FIFO run on an unusable machine) is written as +Inf.
func WriteTrace(path string, trace []jobshop.Operation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create trace artifact: %w", err)
	}

	w := csv.NewWriter(f)
	_ = w.Write([]string{"machine", "job", "element", "start", "finish", "order"})
	for _, op := range trace {
		_ = w.Write([]string{
			strconv.Itoa(op.Machine + 1),
			strconv.Itoa(op.Job + 1),
			strconv.Itoa(op.Element + 1),
			strconv.FormatFloat(op.Start, 'f', 3, 64),
			strconv.FormatFloat(op.Finish, 'f', 3, 64),
			strconv.Itoa(op.Order),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
