package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append <worksheet>",
	Short: "Append rows read from stdin",
	Long: `Append rows after the worksheet's last data row.

Input is read from stdin: one row per line, cells separated by tabs.
With --json, stdin is a JSON array of arrays instead.

Examples:
  printf 'Alice\t2024-01-15\n' | sheets-helper append Signups
  echo '[["Alice","2024-01-15"]]' | sheets-helper append Signups --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	rows, err := readRows(os.Stdin)
	if err != nil {
		return err
	}

	s, err := openSpreadsheet(cmd.Context())
	if err != nil {
		return err
	}
	ws, err := s.Worksheet(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := ws.AppendRows(cmd.Context(), rows); err != nil {
		return err
	}
	fmt.Printf("appended %d row(s) to %q\n", len(rows), args[0])
	return nil
}

func readRows(r io.Reader) ([][]string, error) {
	if jsonOutput {
		var rows [][]string
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, fmt.Errorf("parsing JSON rows: %w", err)
		}
		return rows, nil
	}

	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}
