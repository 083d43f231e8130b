package gate

import (
	"fmt"
	"strings"

	"github.com/CodexForgeBR/migration-tools/internal/state"
)

// waiversFor filters the state's waivers down to those applicable to the
// given target phase and module. A waiver with no module applies to every
// module.
func waiversFor(waivers []state.Waiver, targetPhase int, modulePath string) []state.Waiver {
	var out []state.Waiver
	for _, w := range waivers {
		if w.Phase != targetPhase {
			continue
		}
		if w.Module != "" && w.Module != modulePath {
			continue
		}
		out = append(out, w)
	}
	return out
}

// matchesCriterion reports whether a waiver's criterion field names the
// given criterion. Matching is substring in either direction against the
// criterion's name or description, so both a short waiver like "py3" and
// a verbose one like "tests_pass_py3 flakiness" can hit.
func matchesCriterion(w state.Waiver, c Criterion) bool {
	needle := strings.ToLower(strings.TrimSpace(w.Criterion))
	if needle == "" {
		return false
	}
	for _, field := range []string{strings.ToLower(c.Name), strings.ToLower(c.Description)} {
		if field == "" {
			continue
		}
		if strings.Contains(field, needle) || strings.Contains(needle, field) {
			return true
		}
	}
	return false
}

// applyWaiver overrides a failing or not-evaluated result with the first
// matching waiver. Passing results are never touched: a waiver documents
// accepting an unmet criterion, not upgrading a met one.
func applyWaiver(res *CriterionResult, c Criterion, waivers []state.Waiver) {
	if res.Status != StatusFail && res.Status != StatusNotEvaluated {
		return
	}
	for _, w := range waivers {
		if !matchesCriterion(w, c) {
			continue
		}
		res.Status = StatusWaived
		res.Details = fmt.Sprintf("%s [WAIVED: %s]", res.Details, w.Justification)
		return
	}
}
