package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/accfmt/internal/domain"
	"github.com/rpgo/accfmt/pkg/textutil"
)

// ConsoleFormatter renders an aligned, human readable summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BATCH RESULTS")
	fmt.Fprintln(&buf, "================================")

	width := 0
	for _, r := range results.Results {
		width = max(width, textutil.DisplayWidth(r.Name))
	}
	for _, r := range results.Results {
		value := r.Output
		if r.Failed() {
			value = "ERROR: " + r.Error
		}
		fmt.Fprintf(&buf, "%s  %s = %s\n", padRight(r.Name, width), FormatCall(r.Op, r.Args), value)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%d jobs, %d failed\n", len(results.Results), results.Failed)
	return buf.Bytes(), nil
}
