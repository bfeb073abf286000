package rules

import "fmt"

// Score text placement.
const (
	ScoreX    = 10
	ScoreY    = 10
	ScoreSize = 20
)

// Draw renders the snake and the food. The head and tail glide between
// cells: within a step window the head fills the fraction op of its cell and
// the tail the fraction 1-op, where op is how far the ticker is through the
// window.
func (s *Snake) Draw(w *World, c Canvas) {
	scale := int32(w.Scale)
	color := White
	if !s.Alive {
		color = Red
	}

	for _, r := range s.segmentRects(w) {
		if r.Empty() {
			continue
		}
		c.FillRect(r, color)
	}

	c.FillRect(cellRect(w.Food, scale), Orange)
	c.DrawText(FormatScore(s.Score), ScoreX, ScoreY, ScoreSize, White)
}

// FormatScore renders a score zero padded to at least 3 digits.
func FormatScore(score uint32) string {
	return fmt.Sprintf("%03d", score)
}

// Progress is how far the current step window has run, in [0, 1).
func (s *Snake) Progress(w *World) float32 {
	if w.TickDelay == 0 {
		return 0
	}
	return float32(s.Ticker%w.TickDelay) / float32(w.TickDelay)
}

// segmentRects returns one rectangle per body segment, in body order.
func (s *Snake) segmentRects(w *World) []Rect {
	scale := int32(w.Scale)
	rects := make([]Rect, len(s.Body))
	for i, p := range s.Body {
		rects[i] = cellRect(p, scale)
	}
	if len(s.Body) < 2 {
		return rects
	}

	op := s.Progress(w)
	last := len(s.Body) - 1

	if e := edgeOf(s.Body[0].Sub(s.Body[1]), w.Width, w.Height); e != EdgeNone {
		rects[0] = partialRect(s.Body[0], e, op, scale)
	}
	if e := edgeOf(s.Body[last].Sub(s.Body[last-1]), w.Width, w.Height); e != EdgeNone {
		rects[last] = partialRect(s.Body[last], e, 1-op, scale)
	}
	return rects
}
