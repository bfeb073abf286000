package rules

// Default snake layout.
const (
	DefaultLength    = 5
	DefaultDirection = Right
)

// DefaultStart is the head position of a fresh snake.
var DefaultStart = Point{X: 5, Y: 5}

// GrowthPerFood is how many segments a snake gains for each food it eats.
const GrowthPerFood = 3

// Snake is the player. Body[0] is the head.
type Snake struct {
	Body      []Point
	Alive     bool
	Direction Direction
	Ticker    uint32
	Score     uint32
	Death     *Death
}

// NewSnake lays out a straight snake of the given length with its head at pos
// and the rest of the body trailing behind it, opposite to dir.
func NewSnake(pos Point, length uint32, dir Direction) *Snake {
	if length == 0 {
		length = 1
	}
	back := dir.Opposite().Delta()
	body := make([]Point, 0, length)
	for n := int32(0); n < int32(length); n++ {
		body = append(body, Point{X: pos.X + back.X*n, Y: pos.Y + back.Y*n})
	}
	return &Snake{
		Body:      body,
		Alive:     true,
		Direction: dir,
	}
}

// NewDefaultSnake returns the snake every round starts with.
func NewDefaultSnake() *Snake {
	return NewSnake(DefaultStart, DefaultLength, DefaultDirection)
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	c := *s
	c.Body = append([]Point(nil), s.Body...)
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return &c
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Status reports whether the snake is still moving.
func (s *Snake) Status() GameStatus {
	if s.Alive {
		return GameStatusRunning
	}
	return GameStatusDead
}

// grow appends n copies of the current tail. The copies sit on the same cell
// and unfold one step at a time as the snake moves on.
func (s *Snake) grow(n int) {
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
}

func (s *Snake) kill(cause string) {
	if !s.Alive {
		return
	}
	s.Alive = false
	s.Death = &Death{
		Ticker: s.Ticker,
		Cause:  cause,
	}
}
