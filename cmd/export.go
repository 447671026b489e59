package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the database or single snippets to portable files",
}

var exportDbCmd = &cobra.Command{
	Use:   "db [dst]",
	Short: "Export the whole database as a SQLite file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dst string
		if len(args) == 1 {
			dst = args[0]
		} else {
			// default: date-stamped file in the current directory,
			// suffixed when the name is already taken
			date := time.Now().UTC().Format("2006-01-02")
			dst = filepath.Join(".", fmt.Sprintf("patchpad-%s.db", date))
			si := 1
			for {
				if _, err := os.Stat(dst); os.IsNotExist(err) {
					break
				}
				dst = filepath.Join(".", fmt.Sprintf("patchpad-%s-%d.db", date, si))
				si++
			}
		}
		// ensure the DB exists and its schema is current before copying
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		_ = dbConn.Close()
		if err := exporter.ExportDatabase(dst); err != nil {
			return err
		}
		cmd.Printf("exported database to %s\n", dst)
		return nil
	},
}

var exportSetCmd = &cobra.Command{
	Use:   "set <name> <dst.yaml>",
	Short: "Export a single snippet as a YAML bundle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, dst := args[0], args[1]
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		if err := exporter.ExportSnippetYAML(dbConn, name, dst); err != nil {
			return err
		}
		cmd.Printf("exported '%s' to %s\n", name, dst)
		return nil
	},
}

func init() {
	exportCmd.AddCommand(exportDbCmd)
	exportCmd.AddCommand(exportSetCmd)
	rootCmd.AddCommand(exportCmd)
}
