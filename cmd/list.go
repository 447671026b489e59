package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snippets",
	Long:  "List saved snippets. Example:\n  patchpad list --tag streamlit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		tagFilter, _ := cmd.Flags().GetString("tag")
		textFilter, _ := cmd.Flags().GetString("filter")
		fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy")
		var snips []registry.Snip
		if tagFilter != "" {
			snips, err = r.ListSnippetsByTag(tagFilter)
			if err != nil {
				return err
			}
		} else if textFilter != "" {
			if fuzzyFlag {
				snips, err = r.FuzzySearchSnippets(textFilter)
				if err != nil {
					return err
				}
			} else {
				snips, err = r.SearchSnippets(textFilter)
				if err != nil {
					return err
				}
			}
		} else {
			snips, err = r.ListSnippets()
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if tagFilter == "" && textFilter == "" {
			fmt.Fprintf(out, "- %s (built-in)\n", snippet.BuiltinName)
		}
		for _, s := range snips {
			fmt.Fprintf(out, "- %s\n", s.Name)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("tag", "", "Filter by tag name")
	listCmd.Flags().String("filter", "", "Filter by text search")
	listCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for text filter")
	rootCmd.AddCommand(listCmd)
}
