package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundpad/internal/board"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the clips on the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := board.Builtin()
			if err != nil {
				return err
			}
			for i := 0; i < reg.Len(); i++ {
				c := reg.At(i)
				fmt.Fprintf(cmd.OutOrStdout(), "[%s]  %-16s %6d bytes\n", c.Trigger, c.Label, len(c.Data))
			}
			return nil
		},
	}
}
