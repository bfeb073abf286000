package rules

// Input is polled once per logical step for the directional keys.
type Input interface {
	Held(d Direction) bool
}

// InputFunc adapts a plain function to the Input interface.
type InputFunc func(d Direction) bool

// Held calls f(d).
func (f InputFunc) Held(d Direction) bool { return f(d) }

// NoInput is an Input with nothing held.
var NoInput Input = InputFunc(func(Direction) bool { return false })

// resolveDirection polls the keys in Directions order, the last held key
// wins. A heading that would reverse the snake onto its own neck is ignored.
func resolveDirection(current Direction, in Input) Direction {
	if in == nil {
		return current
	}
	next := current
	for _, d := range Directions {
		if in.Held(d) {
			next = d
		}
	}
	if next == current.Opposite() {
		return current
	}
	return next
}

// Move the snake 1 space in its current direction, wrapping around the board
// edges. The new body is built from a snapshot of the old one: each trailing
// segment takes the cell its predecessor held before the step.
func (s *Snake) Move(width, height uint32) {
	old := s.Body
	next := make([]Point, len(old))
	next[0] = old[0].Add(s.Direction.Delta()).Wrap(width, height)
	copy(next[1:], old[:len(old)-1])
	s.Body = next
}
