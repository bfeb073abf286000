package commands

import (
	"strings"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simFrames = 600
	simKeys   = ""
	simDump   = false
)

func init() {
	simCmd.Flags().IntVarP(&simFrames, "frames", "n", simFrames, "number of frames to run")
	simCmd.Flags().StringVarP(&simKeys, "keys", "k", simKeys, "comma separated key held at each step, as one of: [up, down, left, right, none]")
	simCmd.Flags().BoolVar(&simDump, "dump", simDump, "dump the final snake")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs the game headless with scripted input",
	Args: func(c *cobra.Command, args []string) error {
		if simFrames < 0 {
			return errors.New("frames must not be negative")
		}
		_, err := parseKeys(simKeys)
		return err
	},
	RunE: func(c *cobra.Command, args []string) error {
		keys, _ := parseKeys(simKeys)

		s, closeRecording, err := newSession()
		if err != nil {
			return err
		}
		defer closeRecording()

		runScript(s, keys, simFrames)

		log.WithFields(log.Fields{
			"Frames": simFrames,
			"Turn":   s.Turn(),
			"Score":  s.Snake.Score,
			"Length": len(s.Snake.Body),
			"Status": s.Snake.Status(),
		}).Info("simulation finished")
		if simDump {
			spew.Dump(s.Snake)
		}
		return nil
	},
}

// script holds one key per logical step. Steps past the end of the script
// hold nothing.
type script struct {
	keys []*rules.Direction
	step int
	held *rules.Direction
}

func (sc *script) Held(d rules.Direction) bool {
	return sc.held != nil && *sc.held == d
}

func (sc *script) ResetRequested() bool { return false }

// advance selects the key for the next step.
func (sc *script) advance() {
	sc.held = nil
	if sc.step < len(sc.keys) {
		sc.held = sc.keys[sc.step]
	}
	sc.step++
}

// runScript runs frames without drawing, feeding the next scripted key
// whenever the coming frame is a step.
func runScript(s *game.Session, keys []*rules.Direction, frames int) {
	sc := &script{keys: keys}
	for i := 0; i < frames; i++ {
		if d := s.World.TickDelay; d != 0 && (s.Snake.Ticker+1)%d == 0 {
			sc.advance()
		}
		s.Update(sc)
	}
}

func parseKeys(text string) ([]*rules.Direction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var keys []*rules.Direction
	for _, k := range strings.Split(text, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "none" || k == "" {
			keys = append(keys, nil)
			continue
		}
		d, ok := rules.ParseDirection(k)
		if !ok {
			return nil, errors.Errorf("unknown key %q", k)
		}
		keys = append(keys, &d)
	}
	return keys, nil
}
