// Package game runs a round of snake one rendered frame at a time. It owns
// the world and the snake, resets them on request, and feeds the optional
// recorder and metrics.
package game

import (
	"fmt"
	"time"

	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

// Controls is what a host polls each frame: the direction keys plus the
// reset signal.
type Controls interface {
	rules.Input
	ResetRequested() bool
}

// StepRecorder receives the state after every logical step.
type StepRecorder interface {
	WriteStep(s *rules.Snake, w *rules.World) error
	NextRound()
}

// HUD placement.
const (
	bannerSize = 30
	debugSize  = 10
)

// Session is a single player game. It is not safe for concurrent use; the
// host loop owns it.
type Session struct {
	World *rules.World
	Snake *rules.Snake

	// Debug shows the last frame time under the score.
	Debug bool

	initial  *rules.Snake
	recorder StepRecorder
	round    int
	turn     int64
	last     time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder records every step of every round.
func WithRecorder(r StepRecorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithSnake replaces the default starting snake.
func WithSnake(snake *rules.Snake) Option {
	return func(s *Session) {
		s.initial = snake.Clone()
	}
}

// WithDebug turns on the frame time readout.
func WithDebug(debug bool) Option {
	return func(s *Session) {
		s.Debug = debug
	}
}

// NewSession starts the first round on w.
func NewSession(w *rules.World, opts ...Option) *Session {
	s := &Session{
		World:   w,
		initial: rules.NewDefaultSnake(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Snake = s.initial.Clone()

	log.WithFields(log.Fields{
		"Width":     w.Width,
		"Height":    w.Height,
		"TickDelay": w.TickDelay,
	}).Info("session started")
	return s
}

// Round is the number of resets so far.
func (s *Session) Round() int { return s.round }

// Turn is the number of steps taken in the current round.
func (s *Session) Turn() int64 { return s.turn }

// Reset replaces the world and snake with their starting values.
func (s *Session) Reset() {
	s.World.Reset()
	s.Snake = s.initial.Clone()
	s.round++
	s.turn = 0
	if s.recorder != nil {
		s.recorder.NextRound()
	}
	metrics.Reset()
	log.WithField("Round", s.round).Info("round reset")
}

// Update runs the simulation half of a frame: reset handling, the snake
// update and the bookkeeping around it.
func (s *Session) Update(ctl Controls) {
	if ctl != nil && ctl.ResetRequested() {
		s.Reset()
	}

	wasAlive := s.Snake.Alive
	score := s.Snake.Score

	var in rules.Input = rules.NoInput
	if ctl != nil {
		in = ctl
	}
	s.Snake.Update(s.World, in)

	if s.Snake.Score > score {
		metrics.Ate()
	}

	moved := wasAlive && s.Snake.Alive && s.Snake.Stepped(s.World)
	died := wasAlive && !s.Snake.Alive
	if moved {
		s.turn++
		metrics.Step()
	}
	if died {
		metrics.Died(s.Snake.Death.Cause)
		log.WithFields(log.Fields{
			"Round": s.round,
			"Turn":  s.turn,
			"Score": s.Snake.Score,
			"Cause": s.Snake.Death.Cause,
		}).Info("round over")
	}
	if (moved || died) && s.recorder != nil {
		if err := s.recorder.WriteStep(s.Snake, s.World); err != nil {
			log.WithError(err).Error("unable to record step, recording stopped")
			s.recorder = nil
		}
	}
}

// Draw renders the board and the HUD.
func (s *Session) Draw(c rules.Canvas) {
	s.Snake.Draw(s.World, c)

	if !s.Snake.Alive {
		w, h := int32(s.World.Width*s.World.Scale), int32(s.World.Height*s.World.Scale)
		c.DrawText("GAME OVER", w/2-bannerSize*3, h/2-bannerSize/2, bannerSize, rules.Red)
		c.DrawText("press R to restart", w/2-debugSize*9, h/2+bannerSize, debugSize*2, rules.White)
	}
	if s.Debug {
		c.DrawText(fmt.Sprintf("frame %.2fms", float64(s.last)/float64(time.Millisecond)),
			rules.ScoreX, rules.ScoreY+rules.ScoreSize+4, debugSize, rules.White)
	}
}

// Frame runs one full frame: update then draw. frameTime is the host's
// measure of the previous frame, shown by the debug readout.
func (s *Session) Frame(ctl Controls, c rules.Canvas, frameTime time.Duration) {
	defer metrics.TimeFrame()()

	s.last = frameTime
	s.Update(ctl)
	s.Draw(c)
}
