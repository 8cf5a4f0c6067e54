package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thewellington00/google-sheets-helper/sheets"
)

var compareCmd = &cobra.Command{
	Use:   "compare <worksheet> <column-a> <column-b>",
	Short: "Compare the values of two columns",
	Long: `Compare two columns of a worksheet by header name.

Reports the overlap and the values unique to each column. Blank cells
are counted but excluded from the set views.

Output:
  default  One-line summary
  --json   Full comparison: intersection, differences, per-value counts

Example:
  sheets-helper compare Signups Email Confirmed_Email`,
	Args: cobra.ExactArgs(3),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	worksheet, colA, colB := args[0], args[1], args[2]

	s, err := openSpreadsheet(cmd.Context())
	if err != nil {
		return err
	}
	ws, err := s.Worksheet(cmd.Context(), worksheet)
	if err != nil {
		return err
	}
	tbl, err := ws.Table(cmd.Context())
	if err != nil {
		return err
	}

	a, ok := tbl.Column(colA)
	if !ok {
		return fmt.Errorf("worksheet %q has no column %q", worksheet, colA)
	}
	b, ok := tbl.Column(colB)
	if !ok {
		return fmt.Errorf("worksheet %q has no column %q", worksheet, colB)
	}

	comparison := sheets.CompareColumns(valueTexts(a), valueTexts(b))
	if jsonOutput {
		return jsonPrint(comparison)
	}
	fmt.Println(comparison.FormatSummary(colA, colB))
	return nil
}

func valueTexts(values []sheets.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Text
	}
	return out
}
