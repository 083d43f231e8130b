package gate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CodexForgeBR/migration-tools/internal/state"
)

// evaluateCriterion computes the raw (pre-waiver) result for one criterion
// against a module. mod may be nil for criteria evaluated where the module
// is unknown; module-scoped checks then report not_evaluated.
func (e *Engine) evaluateCriterion(c Criterion, modulePath string, mod *state.ModuleState) CriterionResult {
	res := CriterionResult{
		Name:        c.Name,
		Description: c.Description,
		Threshold:   formatThreshold(c),
	}

	switch c.Check {
	case CheckFileExists:
		e.evaluateFileExists(c, &res)
	case CheckStateField:
		e.evaluateStateField(c, &res)
	case CheckEvidenceThreshold:
		e.evaluateEvidenceThreshold(c, &res)
	case CheckDecisionsOrNotes:
		evaluateDecisionsOrNotes(mod, &res)
	case CheckDecisionsHaveRationale:
		evaluateDecisionsHaveRationale(mod, &res)
	case CheckHighRiskTriaged:
		e.evaluateHighRiskTriaged(&res)
	default:
		res.Status = StatusNotEvaluated
		res.Details = fmt.Sprintf("unknown check type: %s", c.Check)
	}

	return res
}

func (e *Engine) evaluateFileExists(c Criterion, res *CriterionResult) {
	path, ok := e.evidence.Find(c.EvidenceFile)
	if !ok {
		// Missing evidence means the producing tool has not run yet.
		res.Status = StatusNotEvaluated
		res.Details = fmt.Sprintf("evidence file %s not found", c.EvidenceFile)
		return
	}
	res.Status = StatusPass
	res.Actual = path
	res.EvidenceFile = path
	res.Details = fmt.Sprintf("found %s", path)
}

func (e *Engine) evaluateStateField(c Criterion, res *CriterionResult) {
	value, _ := state.ResolvePath(e.state.Raw, c.StatePath)
	res.Actual = value

	if c.Threshold == ThresholdNonEmpty {
		if truthy(value) {
			res.Status = StatusPass
			res.Details = fmt.Sprintf("%s is set", c.StatePath)
		} else {
			res.Status = StatusFail
			res.Details = fmt.Sprintf("%s is empty or missing", c.StatePath)
		}
		return
	}

	if compareValues(value, c.Threshold, "==") {
		res.Status = StatusPass
		res.Details = fmt.Sprintf("%s == %v", c.StatePath, c.Threshold)
	} else {
		res.Status = StatusFail
		res.Details = fmt.Sprintf("%s is %v, expected %v", c.StatePath, value, c.Threshold)
	}
}

func (e *Engine) evaluateEvidenceThreshold(c Criterion, res *CriterionResult) {
	doc, path, ok := e.evidence.Load(c.EvidenceFile)
	if !ok {
		res.Status = StatusNotEvaluated
		res.Details = fmt.Sprintf("evidence file %s not found or unreadable", c.EvidenceFile)
		return
	}
	res.EvidenceFile = path

	value, ok := state.ResolvePath(doc, c.EvidenceField)
	if !ok {
		res.Status = StatusNotEvaluated
		res.Details = fmt.Sprintf("field %s not present in %s", c.EvidenceField, c.EvidenceFile)
		return
	}
	res.Actual = value

	if compareValues(value, c.Threshold, c.Comparison) {
		res.Status = StatusPass
		res.Details = fmt.Sprintf("%s is %v (%s %v)", c.EvidenceField, value, c.Comparison, c.Threshold)
	} else {
		res.Status = StatusFail
		res.Details = fmt.Sprintf("%s is %v, required %s %v", c.EvidenceField, value, c.Comparison, c.Threshold)
	}
}

func evaluateDecisionsOrNotes(mod *state.ModuleState, res *CriterionResult) {
	if mod == nil {
		res.Status = StatusNotEvaluated
		res.Details = "module not found in migration state"
		return
	}
	count := len(mod.Decisions) + len(mod.Notes)
	res.Actual = count
	if count > 0 {
		res.Status = StatusPass
		res.Details = fmt.Sprintf("%d decision(s)/note(s) recorded", count)
	} else {
		res.Status = StatusFail
		res.Details = "no decisions or notes recorded for module"
	}
}

func evaluateDecisionsHaveRationale(mod *state.ModuleState, res *CriterionResult) {
	if mod == nil {
		res.Status = StatusNotEvaluated
		res.Details = "module not found in migration state"
		return
	}

	missing := 0
	for _, d := range mod.Decisions {
		if strings.TrimSpace(d.Rationale) == "" {
			missing++
		}
	}
	res.Actual = missing

	// Zero decisions passes vacuously.
	if missing == 0 {
		res.Status = StatusPass
		res.Details = fmt.Sprintf("all %d decision(s) have a rationale", len(mod.Decisions))
	} else {
		res.Status = StatusFail
		res.Details = fmt.Sprintf("%d of %d decision(s) missing a rationale", missing, len(mod.Decisions))
	}
}

func (e *Engine) evaluateHighRiskTriaged(res *CriterionResult) {
	var untriaged []string
	for _, path := range sortedModulePaths(e.state) {
		mod := e.state.Modules[path]
		if !isHighRisk(mod.RiskScore) {
			continue
		}
		if len(mod.Decisions)+len(mod.Notes) == 0 {
			untriaged = append(untriaged, path)
		}
	}
	res.Actual = len(untriaged)

	// No high/critical modules passes vacuously.
	if len(untriaged) == 0 {
		res.Status = StatusPass
		res.Details = "all high-risk modules have a triage decision or note"
		return
	}

	res.Status = StatusFail
	shown := untriaged
	if len(shown) > 5 {
		shown = shown[:5]
	}
	res.Details = fmt.Sprintf("%d high-risk module(s) without triage: %s",
		len(untriaged), strings.Join(shown, ", "))
}

// isHighRisk reports whether a risk score is the "high" or "critical"
// category. Numeric scores never match; only the string categories gate.
func isHighRisk(score any) bool {
	s, ok := score.(string)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "critical":
		return true
	default:
		return false
	}
}

// truthy follows the source semantics for non_empty state fields: nil,
// blank strings, zero numbers, false, and empty collections are all empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// compareValues applies a comparison operator between an actual value and
// a threshold. Both sides are cast to numbers when possible; otherwise the
// comparison falls back to their string forms. Unknown operators never
// hold.
func compareValues(actual, threshold any, op string) bool {
	if af, aok := toFloat(actual); aok {
		if tf, tok := toFloat(threshold); tok {
			switch op {
			case ">=":
				return af >= tf
			case "<=":
				return af <= tf
			case ">":
				return af > tf
			case "<":
				return af < tf
			case "==":
				return af == tf
			case "!=":
				return af != tf
			default:
				return false
			}
		}
	}

	as, ts := fmt.Sprint(actual), fmt.Sprint(threshold)
	switch op {
	case ">=":
		return as >= ts
	case "<=":
		return as <= ts
	case ">":
		return as > ts
	case "<":
		return as < ts
	case "==":
		return as == ts
	case "!=":
		return as != ts
	default:
		return false
	}
}

// toFloat attempts a numeric interpretation of a JSON value, including
// numeric strings.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// formatThreshold renders a criterion's expectation for the report.
func formatThreshold(c Criterion) string {
	switch c.Check {
	case CheckFileExists:
		return "exists"
	case CheckStateField:
		return fmt.Sprintf("%v", c.Threshold)
	case CheckEvidenceThreshold:
		return fmt.Sprintf("%s %v", c.Comparison, c.Threshold)
	case CheckDecisionsOrNotes:
		return ">= 1 decision or note"
	case CheckDecisionsHaveRationale:
		return "all decisions have rationale"
	case CheckHighRiskTriaged:
		return "all high-risk modules triaged"
	default:
		return ""
	}
}
