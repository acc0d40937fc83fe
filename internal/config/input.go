package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/rpgo/accfmt/internal/domain"
	"github.com/rpgo/accfmt/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// DefaultDateLayout is used for date jobs when the file sets no layout
const DefaultDateLayout = dateutil.DefaultLayout

// InputParser handles parsing of batch job files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a job file written in YAML (JSON is accepted as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a job file already in memory
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.DateLayout == "" {
		config.DateLayout = DefaultDateLayout
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Timezone != "" {
		if _, err := time.LoadLocation(config.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", config.Timezone, err)
		}
	}

	if len(config.Jobs) == 0 {
		return fmt.Errorf("no jobs provided")
	}

	seen := make(map[string]bool, len(config.Jobs))
	for i, job := range config.Jobs {
		if err := ip.validateJob(&job); err != nil {
			return fmt.Errorf("job %d validation failed: %w", i, err)
		}
		if seen[job.Name] {
			return fmt.Errorf("job %d: duplicate job name %q", i, job.Name)
		}
		seen[job.Name] = true
	}

	return nil
}

// validateJob validates a single job
func (ip *InputParser) validateJob(job *domain.Job) error {
	if job.Name == "" {
		return fmt.Errorf("job name is required")
	}
	arity, ok := job.Op.Arity()
	if !ok {
		return fmt.Errorf("unknown operation %q", job.Op)
	}
	if len(job.Args) != arity {
		return fmt.Errorf("operation %s takes %d argument(s), got %d", job.Op, arity, len(job.Args))
	}
	return nil
}

// CreateExampleConfiguration creates an example job file covering every operation
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	english := true
	return &domain.Configuration{
		English:    false,
		Timezone:   "Asia/Shanghai",
		DateLayout: DefaultDateLayout,
		Jobs: []domain.Job{
			{Name: "sum", Op: domain.OpAdd, Args: []string{"0.1", "0.2"}},
			{Name: "difference", Op: domain.OpSub, Args: []string{"1.5", "0.25"}},
			{Name: "product", Op: domain.OpMul, Args: []string{"19.9", "100"}},
			{Name: "quotient", Op: domain.OpDiv, Args: []string{"0.3", "0.1"}},
			{Name: "created", Op: domain.OpDate, Args: []string{"1741356309045"}},
			{Name: "created-en", Op: domain.OpDate, Args: []string{"2025-03-07 14:05:09"}, Layout: "dddd, MMMM d yyyy hh:mm tt", English: &english},
			{Name: "invoice-total", Op: domain.OpUpper, Args: []string{"1234.56"}},
			{Name: "balance", Op: domain.OpThousands2, Args: []string{"1234567.891"}},
			{Name: "price", Op: domain.OpMoney, Args: []string{"99.5"}},
			{Name: "comment", Op: domain.OpEscape, Args: []string{"<b>hi</b>"}},
			{Name: "card", Op: domain.OpCard, Args: []string{"6222020200112233"}},
			{Name: "elapsed", Op: domain.OpHumanize, Args: []string{"3725"}},
			{Name: "customer-name", Op: domain.OpRoute, Args: []string{`{"customer":{"name":"张三","cards":["6222020200112233"]}}`, "customer.name"}},
			{Name: "defaults", Op: domain.OpMerge, Args: []string{`{"currency":"CNY","english":false}`, `{"english":true}`}},
		},
	}
}
