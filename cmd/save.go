package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patchpad/internal/capture"
	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
	"patchpad/internal/user"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a named snippet",
	Long: `Save a named snippet. Examples:
  patchpad save missing-return -i 'Add at end of handler()' -b 'return nil'
  cat fix.txt | patchpad save missing-return -i 'Add at end of handler()' --stdin

With --stdin the body is read until EOF, preserving blank lines and
indentation exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if snippet.IsBuiltinName(name) {
			return fmt.Errorf("name %q is reserved for the built-in snippet", name)
		}
		desc, _ := cmd.Flags().GetString("description")
		instruction, _ := cmd.Flags().GetString("instruction")
		body, _ := cmd.Flags().GetString("body")
		fromStdin, _ := cmd.Flags().GetBool("stdin")

		if fromStdin {
			if body != "" {
				return fmt.Errorf("--stdin and --body are mutually exclusive")
			}
			var err error
			body, err = capture.ReadBody(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		if body == "" {
			return fmt.Errorf("a body is required (use --body or --stdin)")
		}
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		if instruction == "" {
			return fmt.Errorf("an instruction is required (use --instruction)")
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		// determine author (flag overrides stored whoami)
		authorFlag, _ := cmd.Flags().GetString("author")
		authorEmailFlag, _ := cmd.Flags().GetString("author-email")
		var authorNamePtr *string
		var authorEmailPtr *string
		if authorFlag != "" {
			authorNamePtr = &authorFlag
			if authorEmailFlag != "" {
				authorEmailPtr = &authorEmailFlag
			}
		} else {
			if p, ok, _ := user.GetProfile(); ok {
				if p.Name != "" {
					authorNamePtr = &p.Name
				}
				if p.Email != "" {
					authorEmailPtr = &p.Email
				}
			}
		}

		// Interactive duplicate name check. Reading the body from stdin and
		// prompting on stdin cannot mix, so duplicates fail outright there.
		if !fromStdin {
			rdr := bufio.NewReader(cmd.InOrStdin())
			for {
				existing, err := r.GetSnippetByName(name)
				if err != nil {
					return err
				}
				if existing == nil && !snippet.IsBuiltinName(name) {
					break
				}
				cmd.Printf("name '%s' already exists; enter a new name: ", name)
				newNameRaw, err := rdr.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read new name: %w", err)
				}
				newName := strings.TrimSpace(newNameRaw)
				if newName == "" {
					cmd.Println("name cannot be empty")
					continue
				}
				name = newName
			}
		}

		var descPtr *string
		if desc != "" {
			descPtr = &desc
		}
		if _, err := r.CreateSnippet(name, descPtr, instruction, body, authorNamePtr, authorEmailPtr); err != nil {
			return err
		}

		cmd.Printf("saved '%s' (%d body lines)\n", name, strings.Count(body, "\n"))
		return nil
	},
}

func init() {
	saveCmd.Flags().StringP("description", "d", "", "Description for the snippet")
	saveCmd.Flags().StringP("instruction", "i", "", "Instruction line telling the operator where to paste the body")
	saveCmd.Flags().StringP("body", "b", "", "Snippet body text")
	saveCmd.Flags().Bool("stdin", false, "Read the body from stdin until EOF")
	saveCmd.Flags().StringP("author", "a", "", "Author name for this snippet (overrides stored whoami)")
	saveCmd.Flags().StringP("author-email", "e", "", "Author email for this snippet (optional)")
	rootCmd.AddCommand(saveCmd)
}
