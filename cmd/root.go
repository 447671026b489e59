package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"patchpad/internal/snippet"
)

var rootCmd = &cobra.Command{
	Use:   "patchpad",
	Short: "patchpad is a registry of paste-ready fix snippets",
	Long:  "patchpad keeps named fix snippets and prints them for manual pasting",
	Run: func(cmd *cobra.Command, _ []string) {
		// Bare invocation emits the built-in snippet. This path must stay
		// deterministic: no database, no prompts, nothing on stderr.
		s := snippet.Builtin()
		_ = snippet.Write(cmd.OutOrStdout(), s.Instruction, s.Body)
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
