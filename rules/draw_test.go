package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeOf(t *testing.T) {
	tests := []struct {
		Vector   Point
		Expected Edge
	}{
		{Vector: Point{X: -1, Y: 0}, Expected: EdgeLeft},
		{Vector: Point{X: 0, Y: -1}, Expected: EdgeUp},
		{Vector: Point{X: 0, Y: 1}, Expected: EdgeDown},
		{Vector: Point{X: 1, Y: 0}, Expected: EdgeRight},
		{Vector: Point{X: 0, Y: 0}, Expected: EdgeNone},
		{Vector: Point{X: 2, Y: 0}, Expected: EdgeNone},
		{Vector: Point{X: -31, Y: 0}, Expected: EdgeRight},
		{Vector: Point{X: 31, Y: 0}, Expected: EdgeLeft},
		{Vector: Point{X: 0, Y: -23}, Expected: EdgeDown},
		{Vector: Point{X: 0, Y: 23}, Expected: EdgeUp},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, edgeOf(test.Vector, 32, 24), "Vector: %s", test.Vector)
	}
}

func TestPartialRect(t *testing.T) {
	p := Point{X: 2, Y: 3}
	tests := []struct {
		Edge     Edge
		Expected Rect
	}{
		{Edge: EdgeLeft, Expected: Rect{X: 55, Y: 60, W: 5, H: 20}},
		{Edge: EdgeUp, Expected: Rect{X: 40, Y: 75, W: 20, H: 5}},
		{Edge: EdgeDown, Expected: Rect{X: 40, Y: 60, W: 20, H: 5}},
		{Edge: EdgeRight, Expected: Rect{X: 40, Y: 60, W: 5, H: 20}},
		{Edge: EdgeNone, Expected: Rect{X: 40, Y: 60, W: 20, H: 20}},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, partialRect(p, test.Edge, 0.25, 20), "Edge: %s", test.Edge)
	}
}

func TestDrawFreshSnake(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()
	c := &recordingCanvas{}

	s.Draw(w, c)

	// at the start of a step window the head has not grown into its cell yet
	body := c.fillsOf(White)
	require.Len(t, body, 4)
	require.Equal(t, Rect{X: 80, Y: 100, W: 20, H: 20}, body[0])
	require.Equal(t, Rect{X: 20, Y: 100, W: 20, H: 20}, body[3])

	food := c.fillsOf(Orange)
	require.Equal(t, []Rect{{X: 100, Y: 320, W: 20, H: 20}}, food)

	require.Len(t, c.texts, 1)
	require.Equal(t, "000", c.texts[0].Text)
}

func TestDrawInterpolatesHeadAndTail(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()

	runFrames(s, w, NoInput, 5)
	require.Equal(t, Point{X: 6, Y: 5}, s.Head())

	lastHead := int32(-1)
	lastTail := int32(w.Scale) + 1
	for frame := 1; frame <= 4; frame++ {
		s.Update(w, NoInput)
		rects := s.segmentRects(w)

		head := rects[0]
		require.Equal(t, int32(120), head.X, "frame %d", frame)
		require.Equal(t, int32(100), head.Y, "frame %d", frame)
		require.Equal(t, int32(20), head.H, "frame %d", frame)
		require.InDelta(t, float64(frame*4), float64(head.W), 1, "frame %d", frame)
		require.Greater(t, head.W, lastHead, "frame %d", frame)
		lastHead = head.W

		tail := rects[len(rects)-1]
		require.Equal(t, int32(60), tail.X+tail.W, "tail must hug its neighbour, frame %d", frame)
		require.Less(t, tail.W, lastTail, "frame %d", frame)
		lastTail = tail.W

		for i := 1; i < len(rects)-1; i++ {
			require.Equal(t, cellRect(s.Body[i], 20), rects[i])
		}
	}
}

func TestDrawInterpolationVertical(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 10, 4))
	s := &Snake{
		Body:      []Point{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}},
		Direction: Up,
		Alive:     true,
		Ticker:    2,
	}

	rects := s.segmentRects(w)

	require.Equal(t, Rect{X: 30, Y: 25, W: 10, H: 5}, rects[0])
	require.Equal(t, Rect{X: 30, Y: 30, W: 10, H: 10}, rects[1])
	require.Equal(t, Rect{X: 30, Y: 40, W: 10, H: 5}, rects[2])
}

func TestDrawAcrossWrapSeam(t *testing.T) {
	w := testWorld(WithBoard(32, 24, 10, 2))
	s := &Snake{
		Body:      []Point{{X: 0, Y: 4}, {X: 31, Y: 4}, {X: 30, Y: 4}},
		Direction: Right,
		Alive:     true,
		Ticker:    1,
	}

	rects := s.segmentRects(w)

	require.Equal(t, Rect{X: 0, Y: 40, W: 5, H: 10}, rects[0])
}

func TestDrawStackedTailIsFullCell(t *testing.T) {
	w := testWorld()
	s := &Snake{
		Body:      []Point{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 4}},
		Direction: Right,
		Alive:     true,
		Ticker:    3,
	}

	rects := s.segmentRects(w)

	require.Equal(t, cellRect(Point{X: 2, Y: 4}, 20), rects[3])
}

func TestDrawSingleSegment(t *testing.T) {
	w := testWorld()
	s := NewSnake(Point{X: 1, Y: 1}, 1, Right)
	s.Ticker = 3
	c := &recordingCanvas{}

	s.Draw(w, c)

	require.Equal(t, []Rect{{X: 20, Y: 20, W: 20, H: 20}}, c.fillsOf(White))
}

func TestDrawDeadSnakeIsRed(t *testing.T) {
	w := testWorld()
	s := NewDefaultSnake()
	s.Ticker = 2
	s.Score = 12
	s.kill(DeathCauseSnakeSelfCollision)
	c := &recordingCanvas{}

	s.Draw(w, c)

	require.Empty(t, c.fillsOf(White))
	require.Len(t, c.fillsOf(Red), 5)
	require.Equal(t, "012", c.texts[0].Text)
}

func TestFormatScore(t *testing.T) {
	require.Equal(t, "000", FormatScore(0))
	require.Equal(t, "007", FormatScore(7))
	require.Equal(t, "042", FormatScore(42))
	require.Equal(t, "1234", FormatScore(1234))
}
