package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateStepsOnTickDelay(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()
	start := copyBody(s.Body)

	runFrames(s, w, NoInput, 4)
	require.Equal(t, start, s.Body, "body moved before the step frame")
	require.Equal(t, uint32(4), s.Ticker)

	s.Update(w, NoInput)
	require.Equal(t, uint32(5), s.Ticker)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())
	require.True(t, s.Stepped(w))

	runFrames(s, w, NoInput, 4)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())
	require.False(t, s.Stepped(w))

	s.Update(w, NoInput)
	require.Equal(t, Point{X: 7, Y: 5}, s.Head())
}

func TestUpdateKeepsBodyContiguous(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 20, 1), WithFood(Point{X: 30, Y: 20}))
	s := NewDefaultSnake()
	in := &scripted{steps: [][]Direction{
		{Down}, {Down}, {Left}, {Left}, {Up}, {Right}, {Right}, {Right}, nil, {Down},
	}}

	for range in.steps {
		before := copyBody(s.Body)
		s.Update(w, in)
		in.next()

		require.True(t, s.Alive)
		for i := 1; i < len(s.Body); i++ {
			require.Equal(t, before[i-1], s.Body[i], "segment %d", i)
		}
	}
}

func TestUpdateReadsInputOnlyOnStep(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()
	polls := 0
	in := InputFunc(func(Direction) bool {
		polls++
		return false
	})

	runFrames(s, w, in, 4)
	require.Equal(t, 0, polls)

	s.Update(w, in)
	require.Equal(t, len(Directions), polls)
}

func TestUpdateReversalBlocked(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()

	runFrames(s, w, held(Left), 5)

	require.Equal(t, Right, s.Direction)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())
	require.True(t, s.Alive)
}

func TestUpdateTurns(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()

	runFrames(s, w, held(Up), 5)

	require.Equal(t, Up, s.Direction)
	require.Equal(t, Point{X: 5, Y: 4}, s.Head())
	require.Equal(t, Point{X: 5, Y: 5}, s.Body[1])
}

func TestUpdateWrapsAroundBoard(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 20, 1))
	s := NewSnake(Point{X: 31, Y: 0}, 3, Right)

	s.Update(w, NoInput)
	require.Equal(t, Point{X: 0, Y: 0}, s.Head())

	s.Update(w, held(Up))
	require.Equal(t, Point{X: 0, Y: 23}, s.Head())
}

func TestUpdateSnakeEats(t *testing.T) {
	w := testWorld(WithFood(Point{X: 7, Y: 5}))
	s := NewDefaultSnake()

	runFrames(s, w, NoInput, 10)
	require.Equal(t, Point{X: 7, Y: 5}, s.Head())
	require.Len(t, s.Body, 5)
	tail := s.Tail()

	s.Update(w, NoInput)

	require.Len(t, s.Body, 8)
	require.Equal(t, uint32(1), s.Score)
	for _, p := range s.Body[5:] {
		require.Equal(t, tail, p)
	}
	require.False(t, containsPoint(s.Body, w.Food), "food %s placed on the body", w.Food)
	require.True(t, w.Contains(w.Food))
}

func TestUpdateGrowthUnfolds(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 20, 1), WithFood(Point{X: 6, Y: 5}))
	s := NewDefaultSnake()

	// step onto the food, then eat it on the next frame
	s.Update(w, NoInput)
	s.Update(w, NoInput)
	require.Len(t, s.Body, 8)
	w.Food = Point{X: 20, Y: 20}

	runFrames(s, w, NoInput, 3)
	seen := map[Point]bool{}
	for _, p := range s.Body {
		require.False(t, seen[p], "segment %s doubled up", p)
		seen[p] = true
	}
}

func TestUpdateSelfCollision(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 20, 1))
	s := NewDefaultSnake()
	in := &scripted{steps: [][]Direction{{Down}, {Left}, {Up}}}

	for range in.steps {
		s.Update(w, in)
		in.next()
	}
	require.True(t, s.Alive)
	require.Equal(t, Point{X: 4, Y: 5}, s.Head())

	s.Update(w, NoInput)
	require.False(t, s.Alive)
	require.NotNil(t, s.Death)
	require.Equal(t, DeathCauseSnakeSelfCollision, s.Death.Cause)
	require.Equal(t, GameStatusDead, s.Status())
}

func TestUpdateDeadSnakeDoesNotMove(t *testing.T) {
	w := testWorld()
	s := &Snake{
		Body: []Point{
			{X: 5, Y: 5},
			{X: 6, Y: 5},
			{X: 6, Y: 6},
			{X: 5, Y: 6},
			{X: 5, Y: 5},
		},
		Direction: Up,
		Alive:     true,
	}
	body := copyBody(s.Body)

	runFrames(s, w, held(Left), 20)

	require.False(t, s.Alive)
	require.Equal(t, body, s.Body)
	require.Equal(t, Up, s.Direction)
	require.Equal(t, uint32(20), s.Ticker)
	require.Equal(t, uint32(0), s.Death.Ticker)
}

func TestUpdateBoardFull(t *testing.T) {
	w := testWorld(WithBoard(2, 2, 10, 1), WithFood(Point{X: 0, Y: 0}))
	s := &Snake{
		Body: []Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
		Direction: Up,
		Alive:     true,
	}

	s.Update(w, NoInput)

	require.False(t, s.Alive)
	require.Equal(t, DeathCauseBoardFull, s.Death.Cause)
	require.Equal(t, uint32(1), s.Score)
	require.Len(t, s.Body, 7)

	runFrames(s, w, NoInput, 5)
	require.Equal(t, uint32(1), s.Score, "dead snake kept eating")
	require.Len(t, s.Body, 7)
}

func TestUpdateTickerWraps(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()
	s.Ticker = ^uint32(0)

	s.Update(w, NoInput)

	require.Equal(t, uint32(0), s.Ticker)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())
}
