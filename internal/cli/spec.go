// Package cli contains the command logic behind cmd/gptree.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayeganov/gptree/pkg/gen"
)

// Spec is the on-disk YAML description of a generation request.
//
//	num_params: 3
//	max_depth: 4
//	method: grow
//	functions: ["+", "-", "*", "/"]
//	terminals: [1, 2, 5]
//	seed: 42
//	param_bias: 0.8
type Spec struct {
	NumParams int       `yaml:"num_params"`
	MaxDepth  int       `yaml:"max_depth"`
	Method    string    `yaml:"method"`
	Functions []string  `yaml:"functions"`
	Terminals []float64 `yaml:"terminals"`
	Seed      *uint64   `yaml:"seed"`
	ParamBias *float64  `yaml:"param_bias"`
}

// LoadSpec reads and parses a YAML generation spec.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec %s: %w", path, err)
	}
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse spec %s: %w", path, err)
	}
	return &s, nil
}

// Request converts the spec into a generation request. Function names
// resolve against the builtin operator catalog; an empty list selects all
// operators.
func (s *Spec) Request() (gen.Request, error) {
	funcs := gen.DefaultFunctions()
	if len(s.Functions) > 0 {
		var err error
		funcs, err = gen.Functions(s.Functions...)
		if err != nil {
			return gen.Request{}, err
		}
	}
	return gen.Request{
		NumParams: s.NumParams,
		Functions: funcs,
		Terminals: s.Terminals,
		MaxDepth:  s.MaxDepth,
		Method:    gen.Method(s.Method),
	}, nil
}
