package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/importer"
	"patchpad/internal/utils"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a database or snippet bundles",
}

var importDbCmd = &cobra.Command{
	Use:   "db <src>",
	Short: "Replace the database with an exported SQLite file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !utils.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
			fmt.Sprintf("replace the current database with %s?", src)) {
			cmd.Println("aborted")
			return nil
		}
		if err := importer.ImportDatabase(src); err != nil {
			return err
		}
		// open once so schema migrations run against the imported file
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		_ = dbConn.Close()
		cmd.Printf("imported database from %s\n", src)
		return nil
	},
}

var importSetCmd = &cobra.Command{
	Use:   "set <bundle.yaml>",
	Short: "Import a snippet from a YAML bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		name, err := importer.ImportSnippetYAML(dbConn, args[0])
		if err != nil {
			return err
		}
		cmd.Printf("imported '%s'\n", name)
		return nil
	},
}

func init() {
	importDbCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	importCmd.AddCommand(importDbCmd)
	importCmd.AddCommand(importSetCmd)
	rootCmd.AddCommand(importCmd)
}
