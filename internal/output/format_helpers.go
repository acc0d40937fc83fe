package output

import (
	"strconv"
	"strings"

	"github.com/rpgo/accfmt/internal/domain"
	"github.com/rpgo/accfmt/pkg/textutil"
)

// FormatCall renders a job invocation as op(arg1, arg2) with quoted arguments.
func FormatCall(op domain.Operation, args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = strconv.Quote(a)
	}
	return string(op) + "(" + strings.Join(quoted, ", ") + ")"
}

// padRight pads s with spaces to width display columns, counting CJK as two.
func padRight(s string, width int) string {
	if n := textutil.DisplayWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
