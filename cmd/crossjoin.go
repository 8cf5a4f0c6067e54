package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var crossjoinCmd = &cobra.Command{
	Use:   "crossjoin <worksheet> <range-a> <range-b>",
	Short: "Cross join the values of two ranges",
	Long: `Produce every pair of values from two ranges of a worksheet.

Both ranges are flattened row-major with blank cells dropped. Pairs are
sorted by the first then the second value, numerically where the values
are numbers. Output is tab-separated, ready to paste into a sheet.

Example:
  sheets-helper crossjoin Signups A2:A10 B2:D2`,
	Args: cobra.ExactArgs(3),
	RunE: runCrossJoin,
}

func init() {
	rootCmd.AddCommand(crossjoinCmd)
}

func runCrossJoin(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	s, err := openSpreadsheet(cmd.Context())
	if err != nil {
		return err
	}
	ws, err := s.Worksheet(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	pairs, err := ws.CrossJoinRanges(cmd.Context(), args[1], args[2])
	if err != nil {
		return err
	}
	if jsonOutput {
		return jsonPrint(pairs)
	}
	for _, p := range pairs {
		fmt.Printf("%s\t%s\n", p[0], p[1])
	}
	return nil
}
