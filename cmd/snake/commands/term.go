package commands

import (
	"io"
	"os"

	tbhost "github.com/battlesnakeio/snake/render/termbox"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "plays the game in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		s, closeRecording, err := newSession()
		if err != nil {
			return err
		}
		defer closeRecording()

		// Log lines would scribble over the board.
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)

		ctx, cancel := interruptContext()
		defer cancel()
		return tbhost.Run(ctx, s, cfg.FPS)
	},
}
