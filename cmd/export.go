package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/storage"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole diary as CSV, JSON or a TOML database dump",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		switch exportFormat {
		case "toml":
			out := exportOut
			if out == "" {
				out, err = storage.DefaultDumpPath()
				if err != nil {
					return err
				}
			}
			if err := app.st.ExportToTOML(out); err != nil {
				return err
			}
			fmt.Printf("✅ Database dumped to %s\n", out)
			return nil

		case "csv":
			snap := tracker.BuildSnapshot(app.store, app.goals)
			csvData, err := storage.BuildCSV(snap)
			if err != nil {
				return err
			}
			return writeExport([]byte(csvData), exportOut)

		case "json":
			snap := tracker.BuildSnapshot(app.store, app.goals)
			jsonData, err := storage.BuildJSON(snap)
			if err != nil {
				return err
			}
			return writeExport(jsonData, exportOut)

		default:
			return fmt.Errorf("unknown format %q (want csv, json or toml)", exportFormat)
		}
	},
}

func writeExport(data []byte, out string) error {
	if out == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✅ Exported to %s\n", out)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: csv, json or toml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout, or the config dir for toml)")
	rootCmd.AddCommand(exportCmd)
}
