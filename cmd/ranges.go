package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Named range commands",
	Long: `Manage named ranges derived from a worksheet's headers.

Commands:
  sync   Create one named range per header column, overwriting ranges
         that already carry a header's name.
  list   List the named ranges on the spreadsheet.
  clear  Delete every named range on the spreadsheet.

Examples:
  sheets-helper ranges sync Signups
  sheets-helper ranges sync Signups --start 2 --end 500
  sheets-helper ranges clear Signups`,
}

var (
	syncStartRow int
	syncEndRow   int
)

var rangesSyncCmd = &cobra.Command{
	Use:   "sync <worksheet>",
	Short: "Create a named range for each header column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ws, err := s.Worksheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		created, err := ws.SyncNamedRanges(cmd.Context(), syncStartRow, syncEndRow)
		if err != nil {
			return err
		}
		if jsonOutput {
			return jsonPrint(created)
		}
		names := make([]string, 0, len(created))
		for name := range created {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s\t%s\n", name, created[name])
		}
		return nil
	},
}

var rangesListCmd = &cobra.Command{
	Use:   "list <worksheet>",
	Short: "List named ranges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ws, err := s.Worksheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		ranges, err := ws.NamedRanges(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return jsonPrint(ranges)
		}
		for _, nr := range ranges {
			fmt.Printf("%s\t%s!%s\n", nr.Name, nr.Sheet, nr.Range)
		}
		return nil
	},
}

var rangesClearCmd = &cobra.Command{
	Use:   "clear <worksheet>",
	Short: "Delete every named range on the spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ws, err := s.Worksheet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		deleted, err := ws.ClearNamedRanges(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d named range(s)\n", len(deleted))
		return nil
	},
}

func init() {
	rangesSyncCmd.Flags().IntVar(&syncStartRow, "start", 2, "First data row (1-based)")
	rangesSyncCmd.Flags().IntVar(&syncEndRow, "end", 0, "Last data row (0 = last row with data)")

	rangesCmd.AddCommand(rangesSyncCmd)
	rangesCmd.AddCommand(rangesListCmd)
	rangesCmd.AddCommand(rangesClearCmd)
	rootCmd.AddCommand(rangesCmd)
}
