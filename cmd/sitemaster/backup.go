package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the site document",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the whole document to a backup file (stdout if omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		data, err := store.ExportJSON()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return err
		}
		fmt.Printf("Backup written to %s\n", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the document from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.ImportJSON(data); err != nil {
			return err
		}
		fmt.Println("Backup restored")
		return nil
	},
}

var backupCSVCmd = &cobra.Command{
	Use:   "csv <materials|workers>",
	Short: "Render a collection as CSV for spreadsheet import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		var out string
		switch args[0] {
		case "materials":
			out, err = store.MaterialsCSV()
		case "workers":
			out, err = store.WorkersCSV()
		default:
			return fmt.Errorf("unknown collection %q (want materials or workers)", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd, backupCSVCmd)
}
