package cmd

import (
	"github.com/spf13/cobra"

	"patchpad/cmd/tui/ui"
	"patchpad/internal/db"
	"patchpad/internal/registry"
	"patchpad/internal/snippet"
	"patchpad/internal/tui/adapters"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse snippets in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := registry.NewRepository(dbConn)
		source := adapters.NewRegistryAdapter(r)

		p, m := ui.NewProgram(source)
		if _, err := p.Run(); err != nil {
			return err
		}

		// A selection committed with enter is printed after the alt screen
		// is torn down, so the output lands in the scrollback and pipes.
		if name := m.Selected(); name != "" {
			s, err := source.Get(cmd.Context(), name)
			if err != nil {
				return err
			}
			return snippet.Write(cmd.OutOrStdout(), s.Instruction, s.Body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
