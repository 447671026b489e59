package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
)

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show details for a snippet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		out := cmd.OutOrStdout()

		if snippet.IsBuiltinName(name) {
			b := snippet.Builtin()
			fmt.Fprintf(out, "Name: %s (built-in)\n", b.Name)
			fmt.Fprintf(out, "Description: %s\n", b.Description)
			fmt.Fprintf(out, "Instruction: %s\n", b.Instruction)
			printBody(out, b.Body)
			return nil
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
		fmt.Fprintf(out, "Name: %s\n", s.Name)
		if s.Description.Valid {
			fmt.Fprintf(out, "Description: %s\n", s.Description.String)
		}
		if s.AuthorName.Valid {
			author := s.AuthorName.String
			if s.AuthorEmail.Valid {
				author += " <" + s.AuthorEmail.String + ">"
			}
			fmt.Fprintf(out, "Author: %s\n", author)
		}
		fmt.Fprintf(out, "Created: %s\n", s.CreatedAt)
		if s.LastShown.Valid {
			fmt.Fprintf(out, "Last shown: %s\n", s.LastShown.String)
		}
		if len(s.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(s.Tags, ", "))
		}
		fmt.Fprintf(out, "Instruction: %s\n", s.Instruction)
		printBody(out, s.Body)
		return nil
	},
}

// printBody numbers the body lines so the operator can talk about them.
// The verbatim form comes from `show`; describe is for inspection.
func printBody(out io.Writer, body string) {
	fmt.Fprintln(out, "Body:")
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, l := range lines {
		fmt.Fprintf(out, "%3d: %s\n", i+1, l)
	}
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
