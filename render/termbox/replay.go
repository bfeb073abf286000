package termbox

import (
	"fmt"

	"github.com/battlesnakeio/snake/record"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	snakeColor = termbox.ColorWhite
	deadColor  = termbox.ColorRed
	foodColor  = termbox.ColorYellow
)

// RenderFrame draws one recorded frame with a border, a title line and the
// score. Replays show whole cells, there is nothing to interpolate between
// recorded steps.
func RenderFrame(info record.Info, frame *record.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		left   = 2
		top    = 2
		width  = int(info.Width) * colsPerCell
		height = int(info.Height)
	)

	renderTitle(left, top, frame)
	renderBorder(left-1, top, width, height)
	renderSnake(left, top+1, frame)
	renderFood(left, top+1, frame)

	status := fmt.Sprintf("Score %03d", frame.Score)
	if frame.Death != nil {
		status = fmt.Sprintf("%s - %s", status, frame.Death.Cause)
	}
	tbprint(left+width+3, top+1, defaultColor, defaultColor, status)

	return termbox.Flush()
}

// PrintFooter writes a line of text at the bottom left of the terminal.
func PrintFooter(msg string) error {
	_, h := termbox.Size()
	tbprint(0, h-1, defaultColor, defaultColor, msg)
	return termbox.Flush()
}

func renderSnake(left, top int, frame *record.Frame) {
	color := snakeColor
	if !frame.Alive {
		color = deadColor
	}
	for _, b := range frame.Body {
		fill(left+int(b.X)*colsPerCell, top+int(b.Y), colsPerCell, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

func renderFood(left, top int, frame *record.Frame) {
	f := frame.Food
	fill(left+int(f.X)*colsPerCell, top+int(f.Y), colsPerCell, 1, termbox.Cell{Ch: ' ', Fg: foodColor, Bg: foodColor})
}

// renderBorder draws a box whose inside starts one cell right of and below
// left, top and spans width by height cells.
func renderBorder(left, top, width, height int) {
	right := left + width + 1
	bottom := top + height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left+1, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left+1, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame *record.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake replay - Round %d Turn %d", frame.Round, frame.Turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
