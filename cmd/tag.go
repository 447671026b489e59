package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patchpad/internal/db"
	"patchpad/internal/registry"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage snippet tags",
}

// withSnippet resolves a stored snippet by name and runs fn with an open
// repository. Shared by the tag subcommands.
func withSnippet(name string, fn func(r *registry.Repository, s *registry.Snip) error) error {
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
	return fn(r, s)
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name> <tag>",
	Short: "Add a tag to a snippet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnippet(args[0], func(r *registry.Repository, s *registry.Snip) error {
			if err := r.AddTag(s.ID, args[1]); err != nil {
				return err
			}
			cmd.Printf("tagged '%s' with '%s'\n", args[0], args[1])
			return nil
		})
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <name> <tag>",
	Short: "Remove a tag from a snippet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnippet(args[0], func(r *registry.Repository, s *registry.Snip) error {
			if err := r.RemoveTag(s.ID, args[1]); err != nil {
				return err
			}
			cmd.Printf("removed tag '%s' from '%s'\n", args[1], args[0])
			return nil
		})
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list <name>",
	Short: "List a snippet's tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnippet(args[0], func(_ *registry.Repository, s *registry.Snip) error {
			if len(s.Tags) == 0 {
				cmd.Println("no tags")
				return nil
			}
			cmd.Println(strings.Join(s.Tags, "\n"))
			return nil
		})
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
