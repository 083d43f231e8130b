package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/migration-tools/internal/config"
)

func writeOverrides(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOverridesJSON(t *testing.T) {
	path := writeOverrides(t, "gate-config.json", `{
		"thresholds": {
			"phase_2_to_3": {"tests_pass_py3": 80}
		},
		"disabled_criteria": ["no_lint_regressions"]
	}`)

	o, err := config.LoadOverrides(path)
	require.NoError(t, err)

	v, ok := o.ThresholdFor("2_to_3", "tests_pass_py3")
	require.True(t, ok)
	assert.Equal(t, float64(80), v)

	assert.True(t, o.Disabled("no_lint_regressions"))
	assert.False(t, o.Disabled("tests_pass_py3"))
}

func TestLoadOverridesYAML(t *testing.T) {
	path := writeOverrides(t, "gate-config.yaml", `
thresholds:
  phase_4_to_5:
    performance_acceptable: 15
disabled_criteria:
  - parity_verified
`)

	o, err := config.LoadOverrides(path)
	require.NoError(t, err)

	v, ok := o.ThresholdFor("4_to_5", "performance_acceptable")
	require.True(t, ok)
	assert.Equal(t, 15, v)
	assert.True(t, o.Disabled("parity_verified"))
}

func TestThresholdForMisses(t *testing.T) {
	o := &config.Overrides{
		Thresholds: map[string]map[string]any{
			"phase_2_to_3": {"tests_pass_py3": 80},
		},
	}

	_, ok := o.ThresholdFor("2_to_3", "other_criterion")
	assert.False(t, ok)
	_, ok = o.ThresholdFor("0_to_1", "tests_pass_py3")
	assert.False(t, ok)

	var nilOverrides *config.Overrides
	_, ok = nilOverrides.ThresholdFor("2_to_3", "tests_pass_py3")
	assert.False(t, ok)
	assert.False(t, nilOverrides.Disabled("anything"))
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := config.LoadOverrides(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadOverridesMalformed(t *testing.T) {
	path := writeOverrides(t, "gate-config.json", `{"thresholds": [`)
	_, err := config.LoadOverrides(path)
	assert.Error(t, err)
}
