// Package exitcode defines named exit codes for the gate-check CLI.
//
// Gate verdicts are deliberately not surfaced through the exit status:
// a failing gate still exits 0 and callers read the JSON report instead.
// Only structural errors (bad arguments, unreadable state file) exit non-zero.
package exitcode

const (
	Success = 0 // Run completed; the gate verdict is in the report
	Error   = 1 // Invalid args, state file missing or malformed
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	default:
		return "unknown"
	}
}
