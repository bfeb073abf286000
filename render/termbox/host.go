package termbox

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Run plays the session in the terminal at the given frame rate until the
// player quits or ctx is done.
func Run(ctx context.Context, s *game.Session, fps int) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "termbox: unable to init terminal")
	}
	defer termbox.Close()

	done := make(chan struct{})
	events := EventQueue(done)
	defer func() {
		close(done)
		termbox.Interrupt()
	}()

	limiter := rate.NewLimiter(rate.Limit(fps), 1)
	grid := NewGrid(s.World)
	keys := newKeyboard(int(s.World.TickDelay))
	last := time.Now()

	log.WithField("fps", fps).Info("terminal host started")
	for {
		if err := limiter.Wait(ctx); err != nil {
			log.WithError(err).Info("terminal host stopped")
			return nil
		}

		if quit := drainEvents(events, keys); quit {
			log.Info("terminal host quit")
			return nil
		}

		now := time.Now()
		grid.Clear()
		s.Frame(keys, grid, now.Sub(last))
		last = now
		keys.endFrame()

		if err := termbox.Clear(defaultColor, defaultColor); err != nil {
			return err
		}
		renderBorder(0, 0, grid.cols, grid.rows)
		if err := grid.Flush(1, 1); err != nil {
			return err
		}
	}
}

func drainEvents(events <-chan termbox.Event, keys *keyboard) bool {
	for {
		select {
		case ev := <-events:
			if ev.Type == termbox.EventError {
				log.WithError(ev.Err).Warn("terminal event error")
				continue
			}
			if keys.handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// EventQueue forwards terminal events until done is closed or the poll is
// interrupted.
func EventQueue(done <-chan struct{}) <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			e := termbox.PollEvent()
			if e.Type == termbox.EventInterrupt {
				return
			}
			select {
			case ev <- e:
			case <-done:
				return
			}
		}
	}(eventQueue)
	return eventQueue
}
