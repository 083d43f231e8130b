// Package cli provides help text and usage formatting for the gate-check CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `gate-check - Phase-gate evaluation for the Python 2→3 migration

USAGE
  gate-check <state-file> (--module PATH | --unit NAME | --all [--phase N]) [flags]

FLAGS
  Scope (exactly one required):
    --module <path>            Check the gate for a single module
    --unit <name>              Check the gate for a conversion unit
    --all                      Check gates for every module below phase 5
    --phase <0-4>              With --all: only modules currently at this phase

  Directories:
    --output <dir>             Where gate-check-report.json is written (default: .)
    --evidence-dir <dir>       Evidence artifacts, searched first (default: .)
    --analysis-dir <dir>       Analysis artifacts, searched second (default: .)

  Optional Inputs:
    --gate-config <path>       Threshold overrides and disabled criteria (JSON or YAML)
    --env-file <path>          Dotenv file providing GATE_* settings

  Misc:
    -v, --verbose              Print per-criterion debug output
    -h, --help                 Show this help text
    --version                  Show version, commit, build date

ENVIRONMENT
  GATE_OUTPUT_DIR, GATE_EVIDENCE_DIR, GATE_ANALYSIS_DIR, GATE_CONFIG,
  GATE_VERBOSE — same meaning as the corresponding flags; flags win.

EXIT CODES
  0   Run completed; the gate verdict (pass/fail) is in the JSON report
  1   Invalid arguments, or state file missing/malformed

  A failing gate still exits 0. Script against the "result" field of
  <output>/gate-check-report.json, not the exit status.

EXAMPLES
  # Can src/scada/modbus_reader.py advance to its next phase?
  gate-check migration-state.json --module src/scada/modbus_reader.py --output reports/

  # Check a whole conversion unit
  gate-check migration-state.json --unit scada-core --output reports/

  # Survey every module currently at phase 2
  gate-check migration-state.json --all --phase 2 --evidence-dir evidence/

For more information, see: https://github.com/CodexForgeBR/migration-tools
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
