package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

var teamSearch string

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "List the team roster",
	Long: `List the team roster with risk, value and potential.

Examples:
  skillmatrix team
  skillmatrix team --search developer`,
	Args: cobra.NoArgs,
	RunE: runTeam,
}

var employeeCmd = &cobra.Command{
	Use:   "employee <id>",
	Short: "Show an employee profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployee,
}

func init() {
	teamCmd.Flags().StringVarP(&teamSearch, "search", "s", "", "filter by ID or position")
}

func runTeam(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("team", err)
	}

	vm := viewmodel.NewTeamModel(ds.Employees, ds.Categories)
	vm.SetSearchTerm(teamSearch)
	writeTeamTable(cmd.OutOrStdout(), vm.FilteredEmployees())
	return nil
}

// riskColumns are the columns colored by keyword.
var riskColumns = map[int]bool{2: true, 3: true, 4: true}

func writeTeamTable(w io.Writer, employees []models.Employee) {
	if len(employees) == 0 {
		_, _ = fmt.Fprintln(w, "No employees match your search.")
		return
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{e.ID, e.Position, e.RiskLevel, e.Value, e.Potential})
	}
	writeTable(w, []string{"ID", "POSITION", "RISK", "VALUE", "POTENTIAL"}, rows, func(row, col int, padded string) string {
		if !riskColumns[col] {
			return padded
		}
		token := viewmodel.RiskColor(rows[row][col])
		return lipgloss.NewStyle().Foreground(theme.TokenColor(token)).Render(padded)
	})
	_, _ = fmt.Fprintf(w, "\n%d employees\n", len(employees))
}

func runEmployee(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("employee", fmt.Errorf("%s: %w", viewmodel.MsgLoadFailed, err))
	}

	p, err := viewmodel.NewProfile(ds, args[0])
	if err != nil {
		return logCLIError("employee", fmt.Errorf("employee %s not found", args[0]))
	}
	writeProfile(cmd.OutOrStdout(), p)
	return nil
}

func writeProfile(w io.Writer, p *viewmodel.Profile) {
	e := p.Employee
	_, _ = fmt.Fprintf(w, "Employee: %s\n", e.ID)
	_, _ = fmt.Fprintf(w, "Position: %s\n", orNotSpecified(e.Position))
	_, _ = fmt.Fprintf(w, "Risk: %s\n", orNotSpecified(e.RiskLevel))
	_, _ = fmt.Fprintf(w, "Value: %s\n", orNotSpecified(e.Value))
	_, _ = fmt.Fprintf(w, "Potential: %s\n", orNotSpecified(e.Potential))
	_, _ = fmt.Fprintf(w, "Salary plan: %s\n", orNotSpecified(e.SalaryPlan))
	if e.Comment != "" {
		_, _ = fmt.Fprintf(w, "\nComment:\n  %s\n", e.Comment)
	}

	_, _ = fmt.Fprintln(w, "\nCompetencies:")
	if len(p.Groups) == 0 {
		_, _ = fmt.Fprintln(w, "  none listed")
		return
	}
	for _, g := range p.Groups {
		_, _ = fmt.Fprintf(w, "  %s\n", g.Category)
		for _, sub := range g.Subcategories {
			_, _ = fmt.Fprintf(w, "    • %s\n", sub.Name)
			for _, band := range models.Bands {
				_, _ = fmt.Fprintf(w, "        %s: %s\n", band.Label(), strings.TrimSpace(sub.Bands[band]))
			}
		}
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
