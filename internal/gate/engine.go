package gate

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/migration-tools/internal/config"
	"github.com/CodexForgeBR/migration-tools/internal/evidence"
	"github.com/CodexForgeBR/migration-tools/internal/logging"
	"github.com/CodexForgeBR/migration-tools/internal/state"
)

// Engine evaluates phase gates against a loaded migration state. It reads
// evidence through the locator and never writes anything itself; callers
// persist the returned reports with WriteReport.
type Engine struct {
	state     *state.MigrationState
	evidence  *evidence.Locator
	overrides *config.Overrides
	log       *logging.Logger

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// New constructs an Engine. overrides may be nil (default criteria apply).
func New(st *state.MigrationState, loc *evidence.Locator, overrides *config.Overrides, log *logging.Logger) *Engine {
	return &Engine{
		state:     st,
		evidence:  loc,
		overrides: overrides,
		log:       log,
		now:       time.Now,
	}
}

func (e *Engine) newReport(scope, scopeName string) *GateReport {
	return &GateReport{
		ReportID:  uuid.NewString(),
		Scope:     scope,
		ScopeName: scopeName,
		Timestamp: e.now().UTC().Format(time.RFC3339),
	}
}

// CheckModuleGate evaluates whether one module may advance to its next
// phase. An unknown module produces an error report rather than a crash;
// a module at the terminal phase passes with no criteria.
func (e *Engine) CheckModuleGate(modulePath string) *GateReport {
	report := e.newReport("module", modulePath)

	mod, ok := e.state.Modules[modulePath]
	if !ok {
		report.Error = fmt.Sprintf("module not found in migration state: %s", modulePath)
		e.log.Error("module not found: %s", modulePath)
		return report
	}

	current := mod.CurrentPhase
	target := current + 1
	report.CurrentPhase = &current

	if target > state.TerminalPhase {
		report.Result = ResultPass
		report.Details = fmt.Sprintf("module is at terminal phase %d; no further gate applies", state.TerminalPhase)
		return report
	}
	report.TargetPhase = &target

	criteria := CriteriaFor(current, e.overrides)
	waivers := waiversFor(e.state.Waivers, target, modulePath)

	summary := &Summary{}
	for _, c := range criteria {
		res := e.evaluateCriterion(c, modulePath, mod)
		applyWaiver(&res, c, waivers)
		e.log.Debug("criterion %s: %s", c.Name, res.Status)

		summary.Total++
		switch res.Status {
		case StatusPass:
			summary.Passed++
		case StatusFail:
			summary.Failed++
		case StatusWaived:
			summary.Waived++
		case StatusNotEvaluated:
			summary.NotEvaluated++
		}
		report.Criteria = append(report.Criteria, res)
	}
	report.Summary = summary

	// Missing evidence blocks exactly like a failure: a gate is satisfied
	// only by evaluated passes and explicit waivers.
	switch {
	case summary.Failed > 0 || summary.NotEvaluated > 0:
		report.Result = ResultFail
	case summary.Waived > 0:
		report.Result = ResultPassWithWaivers
	default:
		report.Result = ResultPass
	}

	return report
}

// CheckUnitGate evaluates every member of a conversion unit. The unit
// passes only when every member passes (with or without waivers); member
// reports are embedded in declaration order and their summaries summed.
func (e *Engine) CheckUnitGate(unitName string) *GateReport {
	report := e.newReport("unit", unitName)

	unit, ok := e.state.ConversionUnits[unitName]
	if !ok {
		report.Error = fmt.Sprintf("conversion unit not found in migration state: %s", unitName)
		e.log.Error("conversion unit not found: %s", unitName)
		return report
	}

	current := unit.CurrentPhase
	target := current + 1
	report.CurrentPhase = &current
	if target <= state.TerminalPhase {
		report.TargetPhase = &target
	}

	summary := &Summary{}
	result := ResultPass
	for _, modulePath := range unit.Modules {
		member := e.CheckModuleGate(modulePath)
		report.Modules = append(report.Modules, member)
		summary.Add(member.Summary)

		switch {
		case member.Error != "" || member.Result == ResultFail:
			result = ResultFail
		case member.Result == ResultPassWithWaivers && result == ResultPass:
			result = ResultPassWithWaivers
		}
	}
	report.Summary = summary
	report.Result = result

	return report
}

// CheckAllGates evaluates every module below the terminal phase. When
// phase >= 0, only modules currently at that phase are considered. The
// report carries one outcome per module plus a tally per transition key.
func (e *Engine) CheckAllGates(phase int) *GateReport {
	report := e.newReport("all", "")
	report.ByTransition = make(map[string]*TransitionTally)

	summary := &Summary{}
	result := ResultPass
	evaluated := 0

	for _, modulePath := range sortedModulePaths(e.state) {
		mod := e.state.Modules[modulePath]
		if mod.CurrentPhase >= state.TerminalPhase {
			continue
		}
		if phase >= 0 && mod.CurrentPhase != phase {
			continue
		}
		evaluated++

		member := e.CheckModuleGate(modulePath)
		summary.Add(member.Summary)

		outcome := ModuleOutcome{
			Module:       modulePath,
			CurrentPhase: mod.CurrentPhase,
			TargetPhase:  mod.CurrentPhase + 1,
			Result:       member.Result,
			Error:        member.Error,
		}
		report.Outcomes = append(report.Outcomes, outcome)

		key := TransitionKey(mod.CurrentPhase)
		tally := report.ByTransition[key]
		if tally == nil {
			tally = &TransitionTally{}
			report.ByTransition[key] = tally
		}
		switch member.Result {
		case ResultPass:
			tally.Pass++
		case ResultPassWithWaivers:
			tally.PassWithWaivers++
		default:
			tally.Fail++
		}

		switch {
		case member.Error != "" || member.Result == ResultFail:
			result = ResultFail
		case member.Result == ResultPassWithWaivers && result == ResultPass:
			result = ResultPassWithWaivers
		}
	}

	report.Summary = summary
	report.Result = result
	if evaluated == 0 {
		report.Details = "no modules below the terminal phase matched the requested scope"
	}

	return report
}

// sortedModulePaths returns the state's module paths in stable order.
func sortedModulePaths(s *state.MigrationState) []string {
	paths := make([]string, 0, len(s.Modules))
	for p := range s.Modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
