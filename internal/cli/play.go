package cli

import (
	"github.com/spf13/cobra"

	"soundpad/internal/audio"
	"soundpad/internal/board"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <trigger>",
		Short: "Play a single clip by its trigger key and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := board.Builtin()
			if err != nil {
				return err
			}
			clip, ok := reg.Find(args[0])
			if !ok {
				return errUnknownTrigger(args[0])
			}
			// Headless path: play in the foreground and surface the error
			// directly instead of detaching.
			return audio.NewLauncher(nil).PlayAndWait(clip.Data)
		},
	}
}
