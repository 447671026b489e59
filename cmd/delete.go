package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
	"patchpad/internal/utils"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a snippet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if snippet.IsBuiltinName(name) {
			return fmt.Errorf("cannot delete the built-in snippet %q", name)
		}
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		s, err := r.GetSnippetByName(name)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("snippet not found: %s", name)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !utils.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), fmt.Sprintf("delete snippet '%s'?", name)) {
			cmd.Println("aborted")
			return nil
		}
		if err := r.DeleteSnippet(name); err != nil {
			return err
		}
		cmd.Printf("deleted '%s'\n", name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
