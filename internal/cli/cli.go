// Package cli provides the command-line interface for skillmatrix.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/config"
	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/pkg/version"
)

var (
	dataDir          string
	appConfig        *config.Config
	commandStartTime time.Time
)

var rootCmd = &cobra.Command{
	Use:   "skillmatrix",
	Short: "Team skill-proficiency matrix dashboard",
	Long: `Team skill-proficiency matrix dashboard

Browse skill categories and their five-level rubrics, look up team
members, and sketch development plans from the terminal.

Run without arguments to launch the interactive TUI. When stdout is
not a terminal the criteria table is printed instead.

Nothing is ever written back to the data files: added categories,
ratings and plans live for the session only.

Configuration:
  ~/.config/skillmatrix/config.yaml, or SKILLMATRIX_* environment
  variables (SKILLMATRIX_DATA_DIR, SKILLMATRIX_THEME, SKILLMATRIX_LOG_LEVEL).`,
	SilenceUsage:      true,
	RunE:              runTUI,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.WithField("command", cmd.Name()).
			WithField("duration_ms", time.Since(commandStartTime).Milliseconds()).
			Debug("command finished")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"read criteria*.json and team*.json from this directory instead of the bundled data")

	rootCmd.AddCommand(criteriaCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	defer func() { _ = log.Close() }()

	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// setup loads configuration and starts the file logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	commandStartTime = time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	appConfig = cfg

	if err := log.Init(config.GetPaths().LogDir); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid config: log_level: %w", err)
	}
	log.SetFormat(cfg.LogFormat)
	theme.Use(cfg.Theme)

	build := version.Current()
	log.WithField("version", build.Version).
		WithField("commit", build.ShortCommit()).
		WithField("channel", build.Channel()).
		WithField("command", cmd.Name()).
		Debug("command started")
	return nil
}

// currentConfig returns the loaded config, or defaults when setup has not run.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// dataSource picks the bundled data or the configured directory.
func dataSource(cfg *config.Config) *dataset.FSSource {
	if cfg.DataDir == "" {
		return dataset.NewEmbedded()
	}
	return dataset.NewDir(cfg.DataDir)
}

func loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src := dataSource(currentConfig())
	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	log.WithField("source", src.Name()).Debugf("loaded %d categories, %d employees", len(ds.Categories), len(ds.Employees))
	return ds, nil
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stdoutIsTerminal and stdinIsTerminal are replaced in tests.
var (
	stdoutIsTerminal = func() bool { return isTerminal(os.Stdout) }
	stdinIsTerminal  = func() bool { return isTerminal(os.Stdin) }
)

// logCLIError records a failed command with its error class.
// Call this before returning errors from CLI commands.
func logCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	log.WithField("command", cmdName).
		WithField("error_type", classifyError(err)).
		Error(err)
	return err
}

// classifyError determines the error type for the log.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "schema", "failed to load", "duplicate"):
		return "data_error"
	case containsAny(errStr, "clipboard"):
		return "clipboard_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist", "no files match"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format", "required", "already exists"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
