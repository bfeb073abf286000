package rules

type fillCall struct {
	Rect  Rect
	Color Color
}

type textCall struct {
	Text  string
	X, Y  int32
	Size  int32
	Color Color
}

// recordingCanvas keeps every draw call made against it.
type recordingCanvas struct {
	fills []fillCall
	texts []textCall
}

func (c *recordingCanvas) FillRect(r Rect, col Color) {
	c.fills = append(c.fills, fillCall{Rect: r, Color: col})
}

func (c *recordingCanvas) DrawText(text string, x, y, size int32, col Color) {
	c.texts = append(c.texts, textCall{Text: text, X: x, Y: y, Size: size, Color: col})
}

func (c *recordingCanvas) fillsOf(col Color) []Rect {
	rects := []Rect{}
	for _, f := range c.fills {
		if f.Color == col {
			rects = append(rects, f.Rect)
		}
	}
	return rects
}

func held(ds ...Direction) Input {
	return InputFunc(func(d Direction) bool {
		for _, h := range ds {
			if h == d {
				return true
			}
		}
		return false
	})
}

// scripted plays back one set of held keys per call to next.
type scripted struct {
	steps [][]Direction
	i     int
}

func (s *scripted) Held(d Direction) bool {
	if s.i >= len(s.steps) {
		return false
	}
	for _, h := range s.steps[s.i] {
		if h == d {
			return true
		}
	}
	return false
}

func (s *scripted) next() { s.i++ }

func runFrames(s *Snake, w *World, in Input, n int) {
	for i := 0; i < n; i++ {
		s.Update(w, in)
	}
}

func copyBody(body []Point) []Point {
	return append([]Point(nil), body...)
}

func testWorld(opts ...WorldOption) *World {
	return NewWorld(append([]WorldOption{WithSeed(42)}, opts...)...)
}
