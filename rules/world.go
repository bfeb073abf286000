package rules

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Default board. These are the values a World starts with and returns to on
// Reset.
const (
	DefaultWidth     = 32
	DefaultHeight    = 24
	DefaultScale     = 20
	DefaultTickDelay = 5
)

// DefaultFood is where the first piece of food sits.
var DefaultFood = Point{X: 5, Y: 16}

// ErrBoardFull is returned when there is no free cell left to place food on.
var ErrBoardFull = errors.New("rules: no free cell left for food")

// World holds the board parameters and the food position.
type World struct {
	Width     uint32
	Height    uint32
	Scale     uint32
	TickDelay uint32
	Food      Point

	initial worldParams
	rng     *rand.Rand
}

// worldParams is the plain-value part of a World, kept to restore it on Reset.
type worldParams struct {
	Width     uint32
	Height    uint32
	Scale     uint32
	TickDelay uint32
	Food      Point
}

// WorldOption tweaks a World built by NewWorld.
type WorldOption func(*World)

// WithSeed seeds the food placement generator, making placement repeatable.
func WithSeed(seed uint64) WorldOption {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBoard overrides the default board geometry.
func WithBoard(width, height, scale, tickDelay uint32) WorldOption {
	return func(w *World) {
		w.Width = width
		w.Height = height
		w.Scale = scale
		w.TickDelay = tickDelay
	}
}

// WithFood overrides the starting food cell.
func WithFood(p Point) WorldOption {
	return func(w *World) {
		w.Food = p
	}
}

// NewWorld creates the default world. Options are applied in order and the
// result becomes the state Reset returns to.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Scale:     DefaultScale,
		TickDelay: DefaultTickDelay,
		Food:      DefaultFood,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	w.initial = worldParams{
		Width:     w.Width,
		Height:    w.Height,
		Scale:     w.Scale,
		TickDelay: w.TickDelay,
		Food:      w.Food,
	}
	return w
}

// Reset restores the values the world was created with. The random
// generator keeps its state.
func (w *World) Reset() {
	w.Width = w.initial.Width
	w.Height = w.initial.Height
	w.Scale = w.initial.Scale
	w.TickDelay = w.initial.TickDelay
	w.Food = w.initial.Food
}

// Contains reports whether p lies on the board.
func (w *World) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < int32(w.Width) && p.Y < int32(w.Height)
}

// PlaceFood moves the food to a random cell that is not covered by body.
// Cells are drawn uniformly and re-rolled until one misses the body. The
// loop only starts once at least one free cell is known to exist, so a
// snake covering the whole board yields ErrBoardFull instead of spinning
// forever; the food is left where it was in that case.
func (w *World) PlaceFood(body []Point) error {
	if countOccupied(body, w) >= int(w.Width)*int(w.Height) {
		return ErrBoardFull
	}

	w.Food = w.randomPoint()
	for containsPoint(body, w.Food) {
		w.Food = w.randomPoint()
	}
	return nil
}

func (w *World) randomPoint() Point {
	return Point{
		X: int32(w.rng.Intn(int(w.Width))),
		Y: int32(w.rng.Intn(int(w.Height))),
	}
}

// countOccupied counts the distinct on-board cells in body. Growth stacks
// copies of the tail, so the raw length overstates coverage.
func countOccupied(body []Point, w *World) int {
	seen := make(map[Point]struct{}, len(body))
	for _, p := range body {
		if w.Contains(p) {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}
