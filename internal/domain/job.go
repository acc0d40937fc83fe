package domain

import "time"

// Operation names a helper that a batch job runs
type Operation string

const (
	OpAdd        Operation = "add"
	OpSub        Operation = "sub"
	OpMul        Operation = "mul"
	OpDiv        Operation = "div"
	OpDate       Operation = "date"
	OpUpper      Operation = "upper"
	OpThousands  Operation = "thousands"
	OpThousands2 Operation = "thousands2"
	OpEscape     Operation = "escape"
	OpWidth      Operation = "width"
	OpCard       Operation = "card"
	OpHumanize   Operation = "humanize"
	OpHash       Operation = "hash"
	OpMoney      Operation = "money"
	OpRoute      Operation = "route"
	OpMerge      Operation = "merge"
)

// operationArity is the number of arguments each operation takes
var operationArity = map[Operation]int{
	OpAdd:        2,
	OpSub:        2,
	OpMul:        2,
	OpDiv:        2,
	OpDate:       1,
	OpUpper:      1,
	OpThousands:  1,
	OpThousands2: 1,
	OpEscape:     1,
	OpWidth:      1,
	OpCard:       1,
	OpHumanize:   1,
	OpHash:       1,
	OpMoney:      1,
	OpRoute:      2,
	OpMerge:      2,
}

// Arity returns the argument count of op and whether op is known
func (op Operation) Arity() (int, bool) {
	n, ok := operationArity[op]
	return n, ok
}

// Operations lists every supported operation
func Operations() []Operation {
	return []Operation{OpAdd, OpSub, OpMul, OpDiv, OpDate, OpUpper, OpThousands, OpThousands2, OpEscape, OpWidth, OpCard, OpHumanize, OpHash, OpMoney, OpRoute, OpMerge}
}

// Configuration is a batch job file together with its shared settings
type Configuration struct {
	English    bool   `yaml:"english" json:"english"`
	Timezone   string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	DateLayout string `yaml:"date_layout,omitempty" json:"date_layout,omitempty"`
	Jobs       []Job  `yaml:"jobs" json:"jobs"`
}

// Job is a single helper invocation
type Job struct {
	Name    string    `yaml:"name" json:"name"`
	Op      Operation `yaml:"op" json:"op"`
	Args    []string  `yaml:"args" json:"args"`
	Layout  string    `yaml:"layout,omitempty" json:"layout,omitempty"`   // overrides Configuration.DateLayout
	English *bool     `yaml:"english,omitempty" json:"english,omitempty"` // overrides Configuration.English
}

// JobResult is the outcome of one job. Error is empty on success.
type JobResult struct {
	Name   string    `yaml:"name" json:"name"`
	Op     Operation `yaml:"op" json:"op"`
	Args   []string  `yaml:"args" json:"args"`
	Output string    `yaml:"output" json:"output"`
	Error  string    `yaml:"error,omitempty" json:"error,omitempty"`
}

// Failed reports whether the job produced an error
func (r JobResult) Failed() bool { return r.Error != "" }

// BatchResult collects the results of a configuration run
type BatchResult struct {
	GeneratedAt time.Time   `yaml:"generated_at" json:"generated_at"`
	Results     []JobResult `yaml:"results" json:"results"`
	Failed      int         `yaml:"failed" json:"failed"`
}
