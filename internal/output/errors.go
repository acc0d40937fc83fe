package output

import "errors"

// ErrUnsupportedFormat is returned for output format names that no formatter handles
var ErrUnsupportedFormat = errors.New("unsupported output format")
