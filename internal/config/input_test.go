package config

import (
	"os"
	"testing"

	"github.com/rpgo/accfmt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "english: true\n" +
		"timezone: \"UTC\"\n" +
		"jobs:\n" +
		"  - name: \"sum\"\n" +
		"    op: add\n" +
		"    args: [\"0.1\", \"0.2\"]\n" +
		"  - name: \"when\"\n" +
		"    op: date\n" +
		"    args: [\"0\"]\n" +
		"    layout: \"yyyy-MM-dd\"\n"

	tmpfile, err := os.CreateTemp("", "test_jobs_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	assert.True(t, config.English)
	assert.Equal(t, "UTC", config.Timezone)
	assert.Equal(t, DefaultDateLayout, config.DateLayout)
	require.Len(t, config.Jobs, 2)
	assert.Equal(t, domain.OpAdd, config.Jobs[0].Op)
	assert.Equal(t, []string{"0.1", "0.2"}, config.Jobs[0].Args)
	assert.Equal(t, "yyyy-MM-dd", config.Jobs[1].Layout)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	testConfig := `
jobs:
	- name: "tabs are not allowed"
`
	parser := NewInputParser()
	config, err := parser.Parse([]byte(testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_JSON(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte(`{"jobs":[{"name":"w","op":"width","args":["中文"]}]}`))

	require.NoError(t, err)
	assert.Equal(t, domain.OpWidth, config.Jobs[0].Op)
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"no jobs", func(c *domain.Configuration) { c.Jobs = nil }, "no jobs provided"},
		{"bad timezone", func(c *domain.Configuration) { c.Timezone = "Mars/Olympus" }, "invalid timezone"},
		{"missing name", func(c *domain.Configuration) { c.Jobs[0].Name = "" }, "job name is required"},
		{"unknown op", func(c *domain.Configuration) { c.Jobs[0].Op = "pow" }, "unknown operation"},
		{"wrong arity", func(c *domain.Configuration) { c.Jobs[0].Args = []string{"1"} }, "takes 2 argument(s), got 1"},
		{"duplicate name", func(c *domain.Configuration) { c.Jobs[1].Name = c.Jobs[0].Name }, "duplicate job name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)

			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.NotNil(t, config)
	assert.NotEmpty(t, config.Jobs)
	assert.NoError(t, parser.ValidateConfiguration(config))
}
