package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the flat category and subcategory table",
	Args:  cobra.NoArgs,
	RunE:  runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("matrix", err)
	}
	writeMatrixTable(cmd.OutOrStdout(), viewmodel.MatrixRows(ds.Categories))
	return nil
}

func writeMatrixTable(w io.Writer, rows []viewmodel.MatrixRow) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "No categories loaded.")
		return
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Category, r.Subcategory, truncateCell(r.Description)})
	}
	writeTable(w, []string{"CATEGORY", "SUBCATEGORY", "DESCRIPTION"}, cells, nil)
}
