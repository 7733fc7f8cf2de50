package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/storage"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	importFormat string
	importYes    bool
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a diary from a JSON snapshot or a TOML database dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if !importYes {
			fmt.Printf("This will overwrite your current diary with %s. Continue? [y/N] ", path)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted")
				return nil
			}
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		switch importFormat {
		case "toml":
			if err := app.st.ImportFromTOML(path); err != nil {
				return err
			}

		case "json":
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}
			snap, err := storage.ParseJSON(data)
			if err != nil {
				return err
			}
			if err := tracker.RestoreSnapshot(app.store, app.goals, snap); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unknown format %q (want json or toml)", importFormat)
		}

		fmt.Printf("✅ Imported %s\n", path)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "json", "Import format: json or toml")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}
