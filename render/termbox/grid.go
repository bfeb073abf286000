// Package termbox hosts the game in a terminal. Every board cell is drawn as
// two terminal columns on one row so squares stay roughly square.
package termbox

import (
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	colsPerCell = 2
)

type cell struct {
	ch rune
	fg termbox.Attribute
	bg termbox.Attribute
}

var blank = cell{ch: ' ', fg: defaultColor, bg: bgColor}

// Grid is a rules.Canvas that rasterises pixel rectangles onto terminal
// cells. A terminal cell is filled when its centre lies inside a rectangle.
type Grid struct {
	cols, rows int
	colW, rowH float32
	cells      []cell
}

// NewGrid sizes a grid for the world's board.
func NewGrid(w *rules.World) *Grid {
	g := &Grid{
		cols: int(w.Width) * colsPerCell,
		rows: int(w.Height),
		colW: float32(w.Scale) / colsPerCell,
		rowH: float32(w.Scale),
	}
	g.cells = make([]cell, g.cols*g.rows)
	g.Clear()
	return g
}

// Size returns the grid dimensions in terminal cells.
func (g *Grid) Size() (int, int) { return g.cols, g.rows }

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// FillRect paints every terminal cell whose centre falls inside r.
func (g *Grid) FillRect(r rules.Rect, c rules.Color) {
	if r.Empty() {
		return
	}
	attr := colorAttr(c)
	for row := 0; row < g.rows; row++ {
		cy := (float32(row) + 0.5) * g.rowH
		if cy < float32(r.Y) || cy >= float32(r.Y+r.H) {
			continue
		}
		for col := 0; col < g.cols; col++ {
			cx := (float32(col) + 0.5) * g.colW
			if cx < float32(r.X) || cx >= float32(r.X+r.W) {
				continue
			}
			g.cells[row*g.cols+col] = cell{ch: ' ', fg: attr, bg: attr}
		}
	}
}

// DrawText writes text starting at the cell containing pixel (x, y). The
// size is ignored, terminals have one font size.
func (g *Grid) DrawText(text string, x, y, size int32, c rules.Color) {
	col := int(float32(x) / g.colW)
	row := int(float32(y) / g.rowH)
	if row < 0 || row >= g.rows {
		return
	}
	attr := colorAttr(c)
	for _, ch := range text {
		if col >= 0 && col < g.cols {
			g.cells[row*g.cols+col] = cell{ch: ch, fg: attr | termbox.AttrBold, bg: bgColor}
		}
		col += runewidth.RuneWidth(ch)
	}
}

// At returns the rune and foreground of the cell at col, row.
func (g *Grid) At(col, row int) (rune, termbox.Attribute, termbox.Attribute) {
	c := g.cells[row*g.cols+col]
	return c.ch, c.fg, c.bg
}

// Flush copies the grid onto the terminal with its top left corner at
// left, top and shows it.
func (g *Grid) Flush(left, top int) error {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			termbox.SetCell(left+col, top+row, c.ch, c.fg, c.bg)
		}
	}
	return termbox.Flush()
}

func colorAttr(c rules.Color) termbox.Attribute {
	switch c {
	case rules.White:
		return termbox.ColorWhite
	case rules.Red:
		return termbox.ColorRed
	case rules.Orange:
		return termbox.ColorYellow
	case rules.Black:
		return termbox.ColorBlack
	}
	return defaultColor
}
