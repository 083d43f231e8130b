package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareValuesNumeric(t *testing.T) {
	tests := []struct {
		name      string
		actual    any
		threshold any
		op        string
		expected  bool
	}{
		{"gte holds", float64(100), 100, ">=", true},
		{"gte fails", float64(85), 90, ">=", false},
		{"lte holds", float64(0), 0, "<=", true},
		{"lte fails", float64(3), 0, "<=", false},
		{"gt holds", float64(91), 90, ">", true},
		{"gt equal fails", float64(90), 90, ">", false},
		{"lt holds", float64(5), 10, "<", true},
		{"eq holds", float64(0), 0, "==", true},
		{"neq holds", float64(1), 0, "!=", true},
		{"numeric string actual", "95", 90, ">=", true},
		{"numeric string threshold", float64(95), "90", ">=", true},
		{"numeric string both", " 85 ", "90", ">=", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareValues(tt.actual, tt.threshold, tt.op))
		})
	}
}

func TestCompareValuesStringFallback(t *testing.T) {
	assert.True(t, compareValues("complete", "complete", "=="))
	assert.False(t, compareValues("partial", "complete", "=="))
	assert.True(t, compareValues("partial", "complete", "!="))
	// Lexicographic ordering applies when either side is non-numeric.
	assert.True(t, compareValues("b", "a", ">"))
	assert.False(t, compareValues("a", "b", ">="))
}

func TestCompareValuesUnknownOperator(t *testing.T) {
	assert.False(t, compareValues(float64(1), 1, "~="))
	assert.False(t, compareValues("a", "a", ""))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"non-empty string", "3.11", true},
		{"zero", float64(0), false},
		{"nonzero", float64(2), true},
		{"false", false, false},
		{"true", true, true},
		{"empty list", []any{}, false},
		{"non-empty list", []any{1}, true},
		{"empty object", map[string]any{}, false},
		{"non-empty object", map[string]any{"k": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truthy(tt.value))
		})
	}
}

func TestIsHighRisk(t *testing.T) {
	assert.True(t, isHighRisk("high"))
	assert.True(t, isHighRisk("HIGH"))
	assert.True(t, isHighRisk(" Critical "))
	assert.False(t, isHighRisk("medium"))
	assert.False(t, isHighRisk("low"))
	assert.False(t, isHighRisk(float64(95)))
	assert.False(t, isHighRisk(nil))
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "exists", formatThreshold(Criterion{Check: CheckFileExists}))
	assert.Equal(t, ">= 90", formatThreshold(Criterion{Check: CheckEvidenceThreshold, Comparison: ">=", Threshold: 90}))
	assert.Equal(t, "non_empty", formatThreshold(Criterion{Check: CheckStateField, Threshold: ThresholdNonEmpty}))
	assert.Equal(t, ">= 1 decision or note", formatThreshold(Criterion{Check: CheckDecisionsOrNotes}))
}
