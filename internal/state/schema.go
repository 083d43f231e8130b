// Package state reads the migration-state document maintained by the
// state-tracker tooling. The document is external input: gate-check only
// ever reads it, and tolerates free-form fields it does not model.
package state

// MigrationState is the top-level migration-state.json document.
//
// Raw holds the decoded document as generic JSON so that criteria can
// navigate arbitrary dot paths (e.g. "project.target_python_version")
// without the typed schema having to know every field.
type MigrationState struct {
	Modules         map[string]*ModuleState `json:"modules"`
	ConversionUnits map[string]*UnitState   `json:"conversion_units"`
	Waivers         []Waiver                `json:"waivers"`
	Project         map[string]any          `json:"project"`

	Raw map[string]any `json:"-"`
}

// ModuleState tracks one source module's progress through the migration.
type ModuleState struct {
	CurrentPhase int        `json:"current_phase"`
	RiskScore    any        `json:"risk_score"` // string category or numeric
	Decisions    []Decision `json:"decisions"`
	Notes        []any      `json:"notes"`
}

// Decision is a recorded human decision about a module. Only the rationale
// is interpreted; other fields belong to the state tracker.
type Decision struct {
	Rationale string `json:"rationale"`
}

// UnitState is a named group of modules migrated together as a batch.
// CurrentPhase is advisory: gate-check does not reconcile it against the
// phases of the member modules.
type UnitState struct {
	Modules      []string `json:"modules"`
	CurrentPhase int      `json:"current_phase"`
}

// Waiver records a human override permitting advancement despite an unmet
// criterion. Module is optional; an empty module applies unit- or
// codebase-wide. Criterion is substring-matched against criterion names
// and descriptions.
type Waiver struct {
	Phase         int    `json:"phase"`
	Module        string `json:"module,omitempty"`
	Criterion     string `json:"criterion"`
	Justification string `json:"justification"`
}

// TerminalPhase is the final migration phase; a module at this phase has
// fully cut over and has no further gate to pass.
const TerminalPhase = 5
