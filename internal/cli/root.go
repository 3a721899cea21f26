package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"soundpad/internal/board"
	"soundpad/internal/tui"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "soundpad",
		Short:        "A terminal soundboard: a grid of clips triggered by key or click",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  soundpad

  # List the clips on the board
  soundpad list

  # Play one clip without the TUI
  soundpad play a
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive board.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI()
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPlayCmd())
	return cmd
}

func runTUI() error {
	reg, err := board.Builtin()
	if err != nil {
		return err
	}
	return tui.Run(reg)
}
