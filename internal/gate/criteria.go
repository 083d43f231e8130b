// Package gate evaluates phase-advancement criteria for the Python 2→3
// migration. A gate is the set of criteria a module must satisfy (or have
// waived) before it may advance from phase N to N+1; the engine consults
// the migration state and scanner-produced evidence files and renders a
// verdict without ever mutating its inputs.
package gate

import (
	"fmt"

	"github.com/CodexForgeBR/migration-tools/internal/config"
)

// CheckType selects the evaluation strategy for a criterion.
type CheckType string

const (
	CheckFileExists             CheckType = "file_exists"
	CheckStateField             CheckType = "state_field"
	CheckEvidenceThreshold      CheckType = "evidence_threshold"
	CheckDecisionsOrNotes       CheckType = "module_has_decisions_or_notes"
	CheckDecisionsHaveRationale CheckType = "module_decisions_have_rationale"
	CheckHighRiskTriaged        CheckType = "high_risk_triaged"
)

// ThresholdNonEmpty is the sentinel threshold for state_field criteria that
// only require the field to be present and non-blank.
const ThresholdNonEmpty = "non_empty"

// Criterion is one immutable gate rule. Which parameter fields are
// meaningful depends on Check.
type Criterion struct {
	Name        string
	Description string
	Check       CheckType

	EvidenceFile  string // file_exists, evidence_threshold
	EvidenceField string // evidence_threshold: dot path into the document
	Threshold     any    // evidence_threshold, state_field
	Comparison    string // evidence_threshold: >=, <=, ==, >, <, !=
	StatePath     string // state_field: dot path into the state document
}

// TransitionKey renders the criteria-table key for advancing out of the
// given phase, e.g. 2 → "2_to_3".
func TransitionKey(from int) string {
	return fmt.Sprintf("%d_to_%d", from, from+1)
}

// transitions is the default criteria table. Keys follow TransitionKey.
var transitions = map[string][]Criterion{
	// Phase 0 → 1: discovery complete.
	"0_to_1": {
		{
			Name:         "inventory_complete",
			Description:  "Codebase analyzer has produced a full module inventory",
			Check:        CheckFileExists,
			EvidenceFile: "codebase-analysis.json",
		},
		{
			Name:          "dynamic_patterns_resolved",
			Description:   "All dynamic import/exec patterns have been resolved or catalogued",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "dynamic-patterns-report.json",
			EvidenceField: "summary.unresolved_count",
			Threshold:     0,
			Comparison:    "<=",
		},
		{
			Name:         "data_layer_mapped",
			Description:  "Data-layer analyzer has mapped serialization and DB boundaries",
			Check:        CheckFileExists,
			EvidenceFile: "data-layer-report.json",
		},
		{
			Name:        "target_version_set",
			Description: "Project records the target Python 3 version",
			Check:       CheckStateField,
			StatePath:   "project.target_python_version",
			Threshold:   ThresholdNonEmpty,
		},
		{
			Name:        "scope_reviewed",
			Description: "Module has at least one recorded scoping decision or note",
			Check:       CheckDecisionsOrNotes,
		},
	},

	// Phase 1 → 2: foundation complete.
	"1_to_2": {
		{
			Name:          "test_baseline_captured",
			Description:   "Python 2 test suite passes fully, establishing the baseline",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "test-results-py2.json",
			EvidenceField: "pass_rate",
			Threshold:     100,
			Comparison:    ">=",
		},
		{
			Name:         "ci_runs_both_versions",
			Description:  "CI executes the suite under both interpreter versions",
			Check:        CheckFileExists,
			EvidenceFile: "ci-dual-version-report.json",
		},
		{
			Name:         "compat_layer_ready",
			Description:  "Compatibility layer is in place for shared idioms",
			Check:        CheckFileExists,
			EvidenceFile: "compat-layer-report.json",
		},
		{
			Name:        "high_risk_triaged",
			Description: "Every high or critical risk module has a triage decision or note",
			Check:       CheckHighRiskTriaged,
		},
		{
			Name:        "foundation_decisions_justified",
			Description: "All recorded foundation decisions carry a rationale",
			Check:       CheckDecisionsHaveRationale,
		},
	},

	// Phase 2 → 3: mechanical conversion complete.
	"2_to_3": {
		{
			Name:         "conversion_complete",
			Description:  "Converter has processed the module and emitted its report",
			Check:        CheckFileExists,
			EvidenceFile: "conversion-report.json",
		},
		{
			Name:          "tests_pass_py2",
			Description:   "Converted code still passes the full suite under Python 2",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "test-results-py2.json",
			EvidenceField: "pass_rate",
			Threshold:     100,
			Comparison:    ">=",
		},
		{
			Name:          "tests_pass_py3",
			Description:   "Converted code passes at least 90% of the suite under Python 3",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "test-results-py3.json",
			EvidenceField: "pass_rate",
			Threshold:     90,
			Comparison:    ">=",
		},
		{
			Name:          "no_lint_regressions",
			Description:   "Conversion introduced no new lint errors",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "lint-comparison.json",
			EvidenceField: "new_errors",
			Threshold:     0,
			Comparison:    "<=",
		},
		{
			Name:        "conversion_reviewed",
			Description: "Module has at least one recorded conversion decision or note",
			Check:       CheckDecisionsOrNotes,
		},
	},

	// Phase 3 → 4: semantic fixes verified.
	"3_to_4": {
		{
			Name:         "semantic_audit_complete",
			Description:  "Semantic audit has run over the converted module",
			Check:        CheckFileExists,
			EvidenceFile: "semantic-audit-report.json",
		},
		{
			Name:          "tests_pass_py3_full",
			Description:   "Full suite passes under Python 3",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "test-results-py3.json",
			EvidenceField: "pass_rate",
			Threshold:     100,
			Comparison:    ">=",
		},
		{
			Name:          "bytes_boundaries_resolved",
			Description:   "No open bytes/str boundary issues remain",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "semantic-audit-report.json",
			EvidenceField: "open_bytes_issues",
			Threshold:     0,
			Comparison:    "<=",
		},
		{
			Name:          "division_semantics_audited",
			Description:   "No open integer-division issues remain",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "semantic-audit-report.json",
			EvidenceField: "open_division_issues",
			Threshold:     0,
			Comparison:    "<=",
		},
		{
			Name:        "semantic_decisions_justified",
			Description: "All recorded semantic-fix decisions carry a rationale",
			Check:       CheckDecisionsHaveRationale,
		},
	},

	// Phase 4 → 5: cutover ready.
	"4_to_5": {
		{
			Name:          "parity_verified",
			Description:   "Output parity between interpreters is verified at 100%",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "parity-report.json",
			EvidenceField: "parity_percent",
			Threshold:     100,
			Comparison:    ">=",
		},
		{
			Name:          "performance_acceptable",
			Description:   "Python 3 performance regression is within 10%",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "performance-report.json",
			EvidenceField: "regression_percent",
			Threshold:     10,
			Comparison:    "<=",
		},
		{
			Name:          "no_py2_imports_remain",
			Description:   "No Python 2 only imports remain in the module",
			Check:         CheckEvidenceThreshold,
			EvidenceFile:  "py2-import-scan.json",
			EvidenceField: "remaining_count",
			Threshold:     0,
			Comparison:    "==",
		},
		{
			Name:        "rollback_plan_recorded",
			Description: "Project records a rollback plan for the cutover",
			Check:       CheckStateField,
			StatePath:   "project.rollback_plan",
			Threshold:   ThresholdNonEmpty,
		},
		{
			Name:        "cutover_approved",
			Description: "Module has at least one recorded cutover decision or note",
			Check:       CheckDecisionsOrNotes,
		},
	},
}

// CriteriaFor returns the criteria for advancing out of phase `from`, with
// the given overrides applied: threshold substitutions first, then removal
// of disabled criteria. The returned slice is a copy; the default table is
// never mutated.
func CriteriaFor(from int, overrides *config.Overrides) []Criterion {
	key := TransitionKey(from)
	defaults, ok := transitions[key]
	if !ok {
		return nil
	}

	criteria := make([]Criterion, 0, len(defaults))
	for _, c := range defaults {
		if overrides.Disabled(c.Name) {
			continue
		}
		if v, ok := overrides.ThresholdFor(key, c.Name); ok {
			c.Threshold = v
		}
		criteria = append(criteria, c)
	}
	return criteria
}
