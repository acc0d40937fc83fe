package output

import (
	"github.com/rpgo/accfmt/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the batch result as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	return yaml.Marshal(results)
}
