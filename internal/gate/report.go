package gate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReportFileName is the fixed output filename under the output directory.
const ReportFileName = "gate-check-report.json"

// Status is the outcome of a single criterion.
type Status string

const (
	StatusPass         Status = "pass"
	StatusFail         Status = "fail"
	StatusWaived       Status = "waived"
	StatusNotEvaluated Status = "not_evaluated"
)

// Result is the overall gate verdict.
type Result string

const (
	ResultPass            Result = "pass"
	ResultPassWithWaivers Result = "pass_with_waivers"
	ResultFail            Result = "fail"
)

// CriterionResult is the evaluated outcome of one criterion.
type CriterionResult struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Threshold    string `json:"threshold"`
	Actual       any    `json:"actual"`
	Status       Status `json:"status"`
	EvidenceFile string `json:"evidence_file,omitempty"`
	Details      string `json:"details"`
}

// Summary tallies criterion outcomes.
type Summary struct {
	Total        int `json:"total_criteria"`
	Passed       int `json:"passed"`
	Failed       int `json:"failed"`
	Waived       int `json:"waived"`
	NotEvaluated int `json:"not_evaluated"`
}

// Add accumulates another summary into this one.
func (s *Summary) Add(other *Summary) {
	if other == nil {
		return
	}
	s.Total += other.Total
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Waived += other.Waived
	s.NotEvaluated += other.NotEvaluated
}

// TransitionTally counts module verdicts per transition key in all-scope
// reports.
type TransitionTally struct {
	Pass            int `json:"pass"`
	PassWithWaivers int `json:"pass_with_waivers"`
	Fail            int `json:"fail"`
}

// GateReport is the machine-readable output of one gate check. Which
// fields are populated depends on the scope: module reports carry
// criteria, unit reports carry per-member module reports, all-scope
// reports carry module outcomes and a by-transition breakdown.
type GateReport struct {
	ReportID  string `json:"report_id"`
	Scope     string `json:"scope"` // module, unit, all
	ScopeName string `json:"scope_name,omitempty"`
	Timestamp string `json:"timestamp"`

	CurrentPhase *int `json:"current_phase,omitempty"`
	TargetPhase  *int `json:"target_phase,omitempty"`

	Result  Result `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`

	Criteria []CriterionResult `json:"criteria,omitempty"`
	Summary  *Summary          `json:"summary,omitempty"`

	// Unit scope: full member reports, in unit declaration order.
	Modules []*GateReport `json:"modules,omitempty"`

	// All scope.
	Outcomes     []ModuleOutcome             `json:"module_outcomes,omitempty"`
	ByTransition map[string]*TransitionTally `json:"by_transition,omitempty"`
}

// ModuleOutcome is one module's verdict in an all-scope report.
type ModuleOutcome struct {
	Module       string `json:"module"`
	CurrentPhase int    `json:"current_phase"`
	TargetPhase  int    `json:"target_phase"`
	Result       Result `json:"result"`
	Error        string `json:"error,omitempty"`
}

// WriteReport marshals the report and writes it to
// <outputDir>/gate-check-report.json, creating the directory if needed.
// The report is fully rendered in memory before the single write, so a
// partial file is never left behind on marshal failure.
func WriteReport(r *GateReport, outputDir string) (string, error) {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(outputDir, ReportFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
