package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rpgo/accfmt/internal/domain"
)

// CSVFormatter writes one row per job, in job order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Operation", "Args", "Output", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		row := []string{
			r.Name,
			string(r.Op),
			strings.Join(r.Args, " "),
			r.Output,
			r.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
