package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional gate-config document. Thresholds substitutes
// criterion thresholds per transition; keys are "phase_{from}_to_{to}"
// mapping criterion name to the replacement value. DisabledCriteria removes
// criteria by name across all transitions.
type Overrides struct {
	Thresholds       map[string]map[string]any `json:"thresholds" yaml:"thresholds"`
	DisabledCriteria []string                  `json:"disabled_criteria" yaml:"disabled_criteria"`
}

// ThresholdFor returns the override threshold for the given transition key
// (e.g. "2_to_3") and criterion name, if one is configured.
func (o *Overrides) ThresholdFor(transition, criterion string) (any, bool) {
	if o == nil || o.Thresholds == nil {
		return nil, false
	}
	byName, ok := o.Thresholds["phase_"+transition]
	if !ok {
		return nil, false
	}
	v, ok := byName[criterion]
	return v, ok
}

// Disabled reports whether the named criterion is disabled.
func (o *Overrides) Disabled(name string) bool {
	if o == nil {
		return false
	}
	for _, d := range o.DisabledCriteria {
		if d == name {
			return true
		}
	}
	return false
}

// LoadOverrides parses a gate-config file. Format is chosen by extension:
// .yaml/.yml decode as YAML, everything else as JSON. Errors here are
// non-fatal to callers — the engine runs with default criteria when the
// override document cannot be loaded.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gate config: %w", err)
	}

	var o Overrides
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parse gate config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parse gate config %s: %w", path, err)
		}
	}
	return &o, nil
}
