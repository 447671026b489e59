package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a snippet's instruction and body",
	Long: `Print a snippet's instruction line followed by its body, verbatim.
The body is the exact text to paste; pipe it or use --copy to place it on
the clipboard. Example:
  patchpad show dashboard-ending`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		bodyOnly, _ := cmd.Flags().GetBool("body-only")
		copyFlag, _ := cmd.Flags().GetBool("copy")

		var instruction, body string
		if snippet.IsBuiltinName(name) {
			// The built-in resolves without touching the database.
			b := snippet.Builtin()
			instruction, body = b.Instruction, b.Body
		} else {
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
			instruction, body = s.Instruction, s.Body
			_ = r.TouchLastShown(s.ID)
		}

		out := cmd.OutOrStdout()
		if bodyOnly {
			fmt.Fprint(out, body)
		} else {
			if err := snippet.Write(out, instruction, body); err != nil {
				return err
			}
		}
		if copyFlag {
			if err := clipboard.WriteAll(body); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			cmd.PrintErrln("copied body to clipboard")
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("body-only", false, "Print only the body, without the instruction line")
	showCmd.Flags().Bool("copy", false, "Also copy the body to the system clipboard")
	rootCmd.AddCommand(showCmd)
}
