// Package cli provides flag binding and validation for the gate-check CLI.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/migration-tools/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command. The flags
// directly modify fields in the provided config pointer. Call
// ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Scope selection
	flags.StringVar(&cfg.Module, "module", "", "Check the gate for a single module path")
	flags.StringVar(&cfg.Unit, "unit", "", "Check the gate for a conversion unit")
	flags.BoolVar(&cfg.All, "all", false, "Check gates for every module below the terminal phase")
	flags.IntVar(&cfg.Phase, "phase", -1, "With --all: only modules currently at this phase")

	// Directories
	flags.StringVar(&cfg.OutputDir, "output", ".", "Directory for gate-check-report.json")
	flags.StringVar(&cfg.AnalysisDir, "analysis-dir", ".", "Directory of analysis artifacts (searched after --evidence-dir)")
	flags.StringVar(&cfg.EvidenceDir, "evidence-dir", ".", "Directory of evidence artifacts (searched first)")

	// Optional inputs
	flags.StringVar(&cfg.GateConfigPath, "gate-config", "", "Path to threshold-override / criterion-disable document (JSON or YAML)")
	flags.StringVar(&cfg.EnvFile, "env-file", "", "Path to a dotenv file for GATE_* settings")

	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print per-criterion debug output")
}

// BuildOverrides creates the CLI-override map consumed by
// config.LoadWithPrecedence. Uses cmd.Flags().Changed() so that default
// flag values never shadow env-file or environment settings.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"output":       {"GATE_OUTPUT_DIR", cfg.OutputDir},
		"analysis-dir": {"GATE_ANALYSIS_DIR", cfg.AnalysisDir},
		"evidence-dir": {"GATE_EVIDENCE_DIR", cfg.EvidenceDir},
		"gate-config":  {"GATE_CONFIG", cfg.GateConfigPath},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	if cmd.Flags().Changed("verbose") {
		overrides["GATE_VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}

	return overrides
}

// ValidateFlags checks flag combinations after parsing. Exactly one of
// --module, --unit, --all must be given, and --phase only makes sense
// with --all.
func ValidateFlags(cfg *config.Config) error {
	scopes := 0
	if cfg.Module != "" {
		scopes++
	}
	if cfg.Unit != "" {
		scopes++
	}
	if cfg.All {
		scopes++
	}
	if scopes == 0 {
		return fmt.Errorf("one of --module, --unit, or --all is required")
	}
	if scopes > 1 {
		return fmt.Errorf("--module, --unit, and --all are mutually exclusive")
	}

	if cfg.Phase != -1 && !cfg.All {
		return fmt.Errorf("--phase is only valid with --all")
	}
	if cfg.Phase < -1 || cfg.Phase > 4 {
		return fmt.Errorf("--phase must be between 0 and 4, got: %d", cfg.Phase)
	}

	return nil
}
