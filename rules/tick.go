package rules

import (
	log "github.com/sirupsen/logrus"
)

// Update advances the snake by one rendered frame. It runs every frame; the
// body only moves on frames where the ticker lands on a multiple of the
// world's tick delay.
//
// The order matters:
//  1. self-collision on the body as it stands
//  2. eating, which grows the body and re-rolls the food
//  3. ticker increment
//  4. on a step frame, input resolution and the move itself
func (s *Snake) Update(w *World, in Input) {
	if checkForDeath(s.Body) && s.Alive {
		s.kill(DeathCauseSnakeSelfCollision)
		log.WithFields(log.Fields{
			"Ticker": s.Ticker,
			"Length": len(s.Body),
			"Score":  s.Score,
		}).Info("snake died")
	}

	// Dead snakes don't eat. After a failed placement the food stays under
	// the head.
	if s.Alive && len(s.Body) > 0 && s.Head().Equal(w.Food) {
		s.eat(w)
	}

	s.Ticker++

	if w.TickDelay == 0 || s.Ticker%w.TickDelay != 0 || !s.Alive {
		return
	}

	s.Direction = resolveDirection(s.Direction, in)
	s.Move(w.Width, w.Height)
}

// Stepped reports whether the most recent Update moved the body, or would
// have had the snake been alive.
func (s *Snake) Stepped(w *World) bool {
	return w.TickDelay != 0 && s.Ticker%w.TickDelay == 0
}

func (s *Snake) eat(w *World) {
	food := w.Food
	s.grow(GrowthPerFood)
	s.Score++

	if err := w.PlaceFood(s.Body); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"Ticker": s.Ticker,
			"Length": len(s.Body),
		}).Warn("no room left for food")
		s.kill(DeathCauseBoardFull)
		return
	}

	log.WithFields(log.Fields{
		"Ticker": s.Ticker,
		"Food":   food,
		"Score":  s.Score,
		"Next":   w.Food,
	}).Debug("snake ate")
}
