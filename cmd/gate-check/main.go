package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/migration-tools/internal/cli"
	"github.com/CodexForgeBR/migration-tools/internal/config"
	"github.com/CodexForgeBR/migration-tools/internal/evidence"
	"github.com/CodexForgeBR/migration-tools/internal/exitcode"
	"github.com/CodexForgeBR/migration-tools/internal/gate"
	"github.com/CodexForgeBR/migration-tools/internal/logging"
	"github.com/CodexForgeBR/migration-tools/internal/state"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "gate-check <state-file>",
		Short:   "Phase-gate evaluation for the Python 2→3 migration",
		Long:    "gate-check evaluates whether modules, conversion units, or the whole codebase may advance to the next migration phase.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.StateFile = args[0]
			if err := cli.ValidateFlags(cfg); err != nil {
				return err
			}
			return runGateCheck(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

func runGateCheck(cmd *cobra.Command, cfg *config.Config) error {
	// Resolve directory/config settings through the precedence chain,
	// then merge back the CLI-only fields.
	cliOverrides := cli.BuildOverrides(cmd, cfg)
	finalCfg, err := config.LoadWithPrecedence(cfg.EnvFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	finalCfg.StateFile = cfg.StateFile
	finalCfg.Module = cfg.Module
	finalCfg.Unit = cfg.Unit
	finalCfg.All = cfg.All
	finalCfg.Phase = cfg.Phase
	finalCfg.EnvFile = cfg.EnvFile
	cfg = finalCfg

	log := logging.New(cfg.Verbose)

	// The state file is the one structurally required input.
	st, err := state.Load(cfg.StateFile)
	if err != nil {
		return err
	}

	// A broken gate-config degrades to default criteria rather than
	// aborting the run.
	var overrides *config.Overrides
	if cfg.GateConfigPath != "" {
		overrides, err = config.LoadOverrides(cfg.GateConfigPath)
		if err != nil {
			log.Warn("gate config ignored: %v", err)
			overrides = nil
		}
	}

	locator := evidence.NewLocator(cfg.EvidenceDir, cfg.AnalysisDir)
	engine := gate.New(st, locator, overrides, log)

	var report *gate.GateReport
	switch {
	case cfg.Module != "":
		log.Header("module gate: %s", cfg.Module)
		report = engine.CheckModuleGate(cfg.Module)
	case cfg.Unit != "":
		log.Header("unit gate: %s", cfg.Unit)
		report = engine.CheckUnitGate(cfg.Unit)
	default:
		log.Header("all gates")
		report = engine.CheckAllGates(cfg.Phase)
	}

	path, err := gate.WriteReport(report, cfg.OutputDir)
	if err != nil {
		return err
	}
	log.Debug("report written to %s", path)

	printVerdict(log, report)
	return nil
}

// printVerdict emits the one-line human summary. The exit code stays 0 for
// every verdict; automation reads the JSON report instead.
func printVerdict(log *logging.Logger, report *gate.GateReport) {
	scope := report.Scope
	if report.ScopeName != "" {
		scope = fmt.Sprintf("%s %s", report.Scope, report.ScopeName)
	}

	if report.Error != "" {
		log.Println("❌ " + color.RedString("ERROR") + " — " + scope + ": " + report.Error)
		return
	}

	tally := ""
	if s := report.Summary; s != nil {
		tally = fmt.Sprintf(" (%d passed, %d failed, %d waived, %d not evaluated)",
			s.Passed, s.Failed, s.Waived, s.NotEvaluated)
	}

	switch report.Result {
	case gate.ResultPass:
		log.Println("✅ " + color.GreenString("PASS") + " — " + scope + tally)
	case gate.ResultPassWithWaivers:
		log.Println("⚠️ " + color.YellowString("PASS_WITH_WAIVERS") + " — " + scope + tally)
	default:
		log.Println("❌ " + color.RedString("FAIL") + " — " + scope + tally)
	}
}
