package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Worksheet lifecycle commands",
	Long: `Manage the worksheets (tabs) of a spreadsheet.

Commands:
  list    List worksheet names in tab order.
  exists  Check whether a worksheet exists.
  create  Add a worksheet with a bold, frozen header row.
  delete  Remove a worksheet.
  rename  Retitle a worksheet.
  copy    Copy all cell values into a new worksheet.

Examples:
  sheets-helper worksheet list
  sheets-helper worksheet create Signups --rows 500 --cols 8
  sheets-helper worksheet copy Signups "Signups Backup"`,
}

var (
	createRows int
	createCols int
)

var worksheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List worksheet names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		names, err := s.ListWorksheets(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return jsonPrint(names)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var worksheetExistsCmd = &cobra.Command{
	Use:   "exists <name>",
	Short: "Check whether a worksheet exists (exit code 1 when absent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ok, err := s.WorksheetExists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("worksheet %q does not exist\n", args[0])
			return &ExitError{Code: 1}
		}
		fmt.Printf("worksheet %q exists\n", args[0])
		return nil
	},
}

var worksheetCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ws, err := s.CreateWorksheet(cmd.Context(), args[0], createRows, createCols)
		if err != nil {
			return err
		}
		fmt.Printf("created worksheet %q\n", ws.Name())
		return nil
	},
}

var worksheetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		if err := s.DeleteWorksheet(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted worksheet %q\n", args[0])
		return nil
	},
}

var worksheetRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a worksheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		if err := s.RenameWorksheet(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("renamed worksheet %q to %q\n", args[0], args[1])
		return nil
	},
}

var worksheetCopyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy a worksheet's values into a new worksheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := openSpreadsheet(cmd.Context())
		if err != nil {
			return err
		}
		ws, err := s.CopyWorksheet(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("copied worksheet %q to %q\n", args[0], ws.Name())
		return nil
	},
}

func init() {
	worksheetCreateCmd.Flags().IntVar(&createRows, "rows", 0, "Row count (default 1000)")
	worksheetCreateCmd.Flags().IntVar(&createCols, "cols", 0, "Column count (default 26)")

	worksheetCmd.AddCommand(worksheetListCmd)
	worksheetCmd.AddCommand(worksheetExistsCmd)
	worksheetCmd.AddCommand(worksheetCreateCmd)
	worksheetCmd.AddCommand(worksheetDeleteCmd)
	worksheetCmd.AddCommand(worksheetRenameCmd)
	worksheetCmd.AddCommand(worksheetCopyCmd)
	rootCmd.AddCommand(worksheetCmd)
}
