package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/config"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/tui"
	"github.com/asteroid-belt/skillmatrix/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
// Without a terminal it falls back to the criteria table.
func runTUI(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return runCriteria(cmd, args)
	}

	cfg := currentConfig()
	src := dataSource(cfg)

	printBanner()
	log.Printf("\n\U0001F4C1 Data: %s\n", src.Name())
	log.Printf("\U0001F4C1 Log file: %s/%s\n", config.GetPaths().LogDir, log.FileName)
	log.Printf("\U0001F3A8 Theme: %s\n", cfg.Theme)
	log.Println("\n\U0001F4CA Launching Skill Matrix TUI...")
	log.Println("   Press / to search, tab to switch screens, q to quit")

	if err := tui.Run(cmd.Context(), cfg, src); err != nil {
		return logCLIError("tui", err)
	}
	return nil
}

func printBanner() {
	banner := `
   ╔═══════════════════════════════════════════════╗
   ║                 SKILL  MATRIX                 ║
   ╠═══════════════════════════════════════════════╣
   ║     TEAM SKILL-PROFICIENCY DASHBOARD          ║
   ╚═══════════════════════════════════════════════╝
`
	fmt.Print(banner)
	fmt.Printf("   Version: %s\n", version.Short())
}
