// Package plan loads batches of named field assignments from YAML.
//
//	description: mild overclock
//	edits:
//	  - field: sclk[7].clock_mhz
//	    value: 1400
//	  - field: power_control_limit
//	    value: 75
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/ppkit/pkg/types"
)

// Edit assigns Value to the named field.
type Edit struct {
	Field string  `yaml:"field"`
	Value *uint64 `yaml:"value"` // pointer so a missing value is distinguishable from 0
}

// Plan is an ordered list of edits.
type Plan struct {
	Description string `yaml:"description,omitempty"`
	Edits       []Edit `yaml:"edits"`
}

// Setter applies one assignment. *pptable.Table satisfies it.
type Setter interface {
	Set(name string, value uint64) error
}

// Load decodes a plan. Unknown keys are rejected.
func Load(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, types.ValidationError("plan: empty document")
		}
		return nil, types.FormatError("plan: %v", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a plan from path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.IOError("open", path, err)
	}
	defer f.Close()
	return Load(f)
}

func (p *Plan) validate() error {
	if len(p.Edits) == 0 {
		return types.ValidationError("plan: no edits")
	}
	for i, e := range p.Edits {
		if e.Field == "" {
			return types.ValidationError("plan: edit %d: missing field", i)
		}
		if e.Value == nil {
			return types.ValidationError("plan: edit %d (%s): missing value", i, e.Field)
		}
	}
	return nil
}

// Apply runs the edits in order and stops at the first failure, returning
// the number of edits applied. Edits already applied are not rolled back;
// callers that need all-or-nothing keep the encoded payload until Apply
// succeeds.
func (p *Plan) Apply(s Setter) (int, error) {
	for i, e := range p.Edits {
		if err := s.Set(e.Field, *e.Value); err != nil {
			return i, fmt.Errorf("plan: edit %d (%s): %w", i, e.Field, err)
		}
	}
	return len(p.Edits), nil
}
