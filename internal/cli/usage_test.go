package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestHelpTemplate_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, helpTemplate)
}

func TestHelpTemplate_ContainsKeyFlags(t *testing.T) {
	requiredFlags := []string{
		"--module",
		"--unit",
		"--all",
		"--phase",
		"--output",
		"--evidence-dir",
		"--analysis-dir",
		"--gate-config",
		"--env-file",
		"--verbose",
		"--help",
		"--version",
	}

	for _, flag := range requiredFlags {
		assert.Contains(t, helpTemplate, flag, "Help template should contain flag: %s", flag)
	}
}

func TestHelpTemplate_ContainsEnvVars(t *testing.T) {
	for _, v := range []string{
		"GATE_OUTPUT_DIR",
		"GATE_EVIDENCE_DIR",
		"GATE_ANALYSIS_DIR",
		"GATE_CONFIG",
		"GATE_VERBOSE",
	} {
		assert.Contains(t, helpTemplate, v, "Help template should contain env var: %s", v)
	}
}

func TestHelpTemplate_ContainsSections(t *testing.T) {
	sections := []string{
		"USAGE",
		"FLAGS",
		"ENVIRONMENT",
		"EXIT CODES",
		"EXAMPLES",
	}

	for _, section := range sections {
		assert.Contains(t, helpTemplate, section, "Help template should contain section: %s", section)
	}
}

func TestSetCustomHelp(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	SetCustomHelp(cmd)
	assert.NotNil(t, cmd)
}
