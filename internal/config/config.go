// Package config holds runtime configuration for the gate-check CLI and
// the optional gate-config override document.
//
// Runtime settings resolve through a precedence chain, lowest to highest:
// built-in defaults, env file (dotenv format), process environment, CLI
// flags. The gate-config document is separate: it tunes criterion
// thresholds and disables criteria, and is loaded per-run from an explicit
// path.
package config

// Config is the fully resolved runtime configuration for one invocation.
type Config struct {
	// Positional
	StateFile string

	// Scope selection (exactly one of Module/Unit/All)
	Module string
	Unit   string
	All    bool
	Phase  int // -1 when unset; only meaningful with All

	// Directories
	OutputDir   string
	AnalysisDir string
	EvidenceDir string

	// Optional inputs
	GateConfigPath string
	EnvFile        string

	Verbose bool
}

// NewDefaultConfig returns a Config with built-in defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Phase:       -1,
		OutputDir:   ".",
		AnalysisDir: ".",
		EvidenceDir: ".",
	}
}

// WhitelistedVars lists the environment variables that may override
// configuration. Anything else in the environment or env file is ignored.
var WhitelistedVars = []string{
	"GATE_OUTPUT_DIR",
	"GATE_ANALYSIS_DIR",
	"GATE_EVIDENCE_DIR",
	"GATE_CONFIG",
	"GATE_VERBOSE",
}
