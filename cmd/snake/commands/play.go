package commands

import (
	"github.com/battlesnakeio/snake/render/raylib"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays the game in a window",
	RunE: func(c *cobra.Command, args []string) error {
		s, closeRecording, err := newSession()
		if err != nil {
			return err
		}
		defer closeRecording()

		ctx, cancel := interruptContext()
		defer cancel()
		return raylib.Run(ctx, s, cfg.FPS)
	},
}
