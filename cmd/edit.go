package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
	"patchpad/internal/utils"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a snippet's body in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if snippet.IsBuiltinName(name) {
			return fmt.Errorf("the built-in snippet %q cannot be edited", name)
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

		edited, err := utils.EditText(s.Body)
		if err != nil {
			return err
		}
		if edited == s.Body {
			cmd.Println("no changes")
			return nil
		}
		if err := r.UpdateBody(s.ID, edited); err != nil {
			return err
		}
		cmd.Printf("updated body of '%s'\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
