package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is the root of a YAML expectation file for one tool.
type Table struct {
	// Tool names the wrapper this table pins down.
	Tool string `yaml:"tool"`

	// Inputs and Outputs map field names to expected metadata.
	Inputs  map[string]FieldExpect `yaml:"inputs"`
	Outputs map[string]FieldExpect `yaml:"outputs"`
}

// FieldExpect is the expected metadata of one declared field.
type FieldExpect struct {
	ArgStr    string   `yaml:"argstr,omitempty"`
	Mandatory bool     `yaml:"mandatory,omitempty"`
	Requires  []string `yaml:"requires,omitempty"`
	Xor       []string `yaml:"xor,omitempty"`
	Exists    bool     `yaml:"exists,omitempty"`
	GenFile   bool     `yaml:"genfile,omitempty"`
	Position  *int     `yaml:"position,omitempty"`
	Choices   []string `yaml:"choices,omitempty"`
}

// LoadFile loads and parses a YAML expectation table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read expectation table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse expectation YAML: %w", err)
	}

	if t.Tool == "" {
		return nil, fmt.Errorf("expectation table has no tool name")
	}

	return &t, nil
}
