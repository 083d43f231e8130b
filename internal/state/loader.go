package state

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a migration-state document. Both the typed schema
// and the raw generic tree are populated from the same bytes; dot-path
// lookups go through Raw, everything else through the typed fields.
//
// A missing or malformed state file is a hard error: the gate cannot be
// evaluated without it.
func Load(path string) (*MigrationState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var s MigrationState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	s.Raw = raw

	return &s, nil
}
