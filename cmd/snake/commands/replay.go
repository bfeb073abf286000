package commands

import (
	"io"
	"os"
	"time"

	"github.com/battlesnakeio/snake/record"
	tbhost "github.com/battlesnakeio/snake/render/termbox"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	replayFile  = ""
	replaySpeed = 200 * time.Millisecond
)

func init() {
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", replayFile, "the recording to replay")
	replayCmd.Flags().DurationVarP(&replaySpeed, "speed", "s", replaySpeed, "time between frames")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded game in the terminal",
	Args: func(c *cobra.Command, args []string) error {
		if len(replayFile) == 0 {
			return errors.New("recording file is required")
		}
		if replaySpeed <= 0 {
			return errors.New("speed must be positive")
		}
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return replayGame()
	},
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, *record.Frame, bool) {
	frameIndex++
	if frameIndex >= frames.count() {
		return frameIndex, nil, true
	}
	return frameIndex, frames.get(frameIndex), false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, *record.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex, frames.get(frameIndex)
}

// loadGame opens the recording and streams its frames into a holder in the
// background so playback can start before the whole file is read.
func loadGame(path string) (record.Info, *frameHolder, error) {
	rd, err := record.Open(path)
	if err != nil {
		return record.Info{}, nil, err
	}

	frames := &frameHolder{}
	go func() {
		defer func() {
			if err := rd.Close(); err != nil {
				log.WithError(err).Error("unable to close recording")
			}
		}()

		for {
			f, ok, err := rd.Next()
			if err != nil {
				log.WithError(err).Error("unable to read frame")
				return
			}
			if !ok {
				return
			}
			frames.append(&f)
		}
	}()

	return rd.Info(), frames, nil
}

func getInitialFrame(frames *frameHolder) (*record.Frame, error) {
	select {
	case f := <-frames.initialFrame():
		return f, nil
	case <-time.After(time.Second):
		return nil, errors.New("unable to find initial frame for game")
	}
}

func replayGame() error {
	info, frames, err := loadGame(replayFile)
	if err != nil {
		return err
	}
	currentFrame, err := getInitialFrame(frames)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "termbox: unable to init terminal")
	}
	defer termbox.Close()
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	done := make(chan struct{})
	eventQueue := tbhost.EventQueue(done)
	defer func() {
		close(done)
		termbox.Interrupt()
	}()

	cycle := time.NewTicker(replaySpeed)
	defer cycle.Stop()
	frameIndex := 0
	paused := false
	finished := false

	for !finished {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
				if err = tbhost.RenderFrame(info, currentFrame); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				var next *record.Frame
				frameIndex, next, finished = moveFrameForwards(frameIndex, frames)
				if finished {
					break
				}
				currentFrame = next
				if err = tbhost.RenderFrame(info, currentFrame); err != nil {
					return err
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			if err = tbhost.RenderFrame(info, currentFrame); err != nil {
				return err
			}
			var next *record.Frame
			frameIndex, next, finished = moveFrameForwards(frameIndex, frames)
			if !finished {
				currentFrame = next
			}
		}
	}

	if err = tbhost.PrintFooter("Press any key to exit..."); err != nil {
		return err
	}
	for ev := range eventQueue {
		if ev.Type == termbox.EventKey {
			break
		}
	}
	return nil
}
