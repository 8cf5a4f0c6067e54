package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/thewellington00/google-sheets-helper/config"
	"github.com/thewellington00/google-sheets-helper/googleapi"
	"github.com/thewellington00/google-sheets-helper/sheets"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	spreadsheetKey  string
	credentialsFile string
	jsonOutput      bool
)

var rootCmd = &cobra.Command{
	Use:           "sheets-helper",
	Short:         "Structured operations on Google Sheets worksheets",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&spreadsheetKey, "spreadsheet", "",
		"Spreadsheet key (env: "+config.EnvSpreadsheetKey+")")
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials-file", "",
		"Service account key file (env: "+config.EnvServiceAccountKeyFile+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output JSON instead of human-formatted summaries")
}

// openSpreadsheet builds the spreadsheet facade from flags and environment.
func openSpreadsheet(ctx context.Context) (*sheets.Spreadsheet, error) {
	cfg, err := config.Load(spreadsheetKey, credentialsFile)
	if err != nil {
		return nil, err
	}
	client, err := googleapi.New(ctx, cfg.SpreadsheetKey, cfg.ServiceAccountKey)
	if err != nil {
		return nil, err
	}
	client.UserAgent = "sheets-helper/" + Version
	return sheets.New(client), nil
}

// ExitError signals a non-zero exit code without printing an error message.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return "" }

func jsonPrint(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Execute() error {
	return rootCmd.Execute()
}
