package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Env file (dotenv format, envFile path) — skipped if empty or absent
//  3. Process environment
//  4. CLI overrides (cliOverrides map)
//
// An env file that exists but cannot be parsed is an error; a missing env
// file is not.
func LoadWithPrecedence(envFile string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	// Layer 2: env file.
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			m, err := godotenv.Read(envFile)
			if err != nil {
				return nil, fmt.Errorf("env file %s: %w", envFile, err)
			}
			ApplyMapToConfig(cfg, m)
		}
	}

	// Layer 3: process environment.
	envVars := make(map[string]string)
	for _, key := range WhitelistedVars {
		if v, ok := os.LookupEnv(key); ok {
			envVars[key] = v
		}
	}
	ApplyMapToConfig(cfg, envVars)

	// Layer 4: CLI overrides (highest priority).
	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "GATE_CONFIG").
// Unknown keys are silently ignored.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		if !whitelistSet[key] {
			continue
		}
		switch key {
		case "GATE_OUTPUT_DIR":
			cfg.OutputDir = value
		case "GATE_ANALYSIS_DIR":
			cfg.AnalysisDir = value
		case "GATE_EVIDENCE_DIR":
			cfg.EvidenceDir = value
		case "GATE_CONFIG":
			cfg.GateConfigPath = value
		case "GATE_VERBOSE":
			cfg.Verbose = parseBool(value)
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
