package rules

// Direction is the heading of a snake.
type Direction int

// The four headings, in clockwise order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in the order input is polled. When several
// keys are held the last one polled wins.
var Directions = []Direction{Up, Down, Left, Right}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// Delta is the unit step one cell in direction d. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: -1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// ParseDirection maps "up", "right", "down" and "left" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}
