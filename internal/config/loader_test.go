package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/migration-tools/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ".", cfg.AnalysisDir)
	assert.Equal(t, ".", cfg.EvidenceDir)
	assert.Equal(t, -1, cfg.Phase)
	assert.False(t, cfg.Verbose)
}

func TestApplyMapToConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	config.ApplyMapToConfig(cfg, map[string]string{
		"GATE_OUTPUT_DIR":   "out",
		"GATE_ANALYSIS_DIR": "analysis",
		"GATE_EVIDENCE_DIR": "evidence",
		"GATE_CONFIG":       "gate-config.json",
		"GATE_VERBOSE":      "yes",
		"UNRELATED_VAR":     "ignored",
	})

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "analysis", cfg.AnalysisDir)
	assert.Equal(t, "evidence", cfg.EvidenceDir)
	assert.Equal(t, "gate-config.json", cfg.GateConfigPath)
	assert.True(t, cfg.Verbose)
}

func TestApplyMapBoolVariants(t *testing.T) {
	for _, v := range []string{"true", "1", "Yes", " TRUE "} {
		cfg := config.NewDefaultConfig()
		config.ApplyMapToConfig(cfg, map[string]string{"GATE_VERBOSE": v})
		assert.True(t, cfg.Verbose, "value %q", v)
	}
	for _, v := range []string{"false", "0", "no", "garbage"} {
		cfg := config.NewDefaultConfig()
		config.ApplyMapToConfig(cfg, map[string]string{"GATE_VERBOSE": v})
		assert.False(t, cfg.Verbose, "value %q", v)
	}
}

func TestLoadWithPrecedenceEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "gate.env")
	require.NoError(t, os.WriteFile(envFile, []byte("GATE_OUTPUT_DIR=from-file\nGATE_EVIDENCE_DIR=ev-from-file\n"), 0644))

	cfg, err := config.LoadWithPrecedence(envFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.OutputDir)
	assert.Equal(t, "ev-from-file", cfg.EvidenceDir)
}

func TestLoadWithPrecedenceProcessEnvBeatsFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "gate.env")
	require.NoError(t, os.WriteFile(envFile, []byte("GATE_OUTPUT_DIR=from-file\n"), 0644))
	t.Setenv("GATE_OUTPUT_DIR", "from-env")

	cfg, err := config.LoadWithPrecedence(envFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
}

func TestLoadWithPrecedenceCLIBeatsEnv(t *testing.T) {
	t.Setenv("GATE_OUTPUT_DIR", "from-env")

	cfg, err := config.LoadWithPrecedence("", map[string]string{"GATE_OUTPUT_DIR": "from-cli"})
	require.NoError(t, err)
	assert.Equal(t, "from-cli", cfg.OutputDir)
}

func TestLoadWithPrecedenceMissingEnvFileSkipped(t *testing.T) {
	cfg, err := config.LoadWithPrecedence(filepath.Join(t.TempDir(), "absent.env"), nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
}
