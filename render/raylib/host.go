// Package raylib hosts the game in a desktop window.
package raylib

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

const title = "Snake"

// Run opens a window sized for the session's board and plays until the
// window is closed or ctx is done.
func Run(ctx context.Context, s *game.Session, fps int) error {
	width := int32(s.World.Width * s.World.Scale)
	height := int32(s.World.Height * s.World.Scale)

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(fps))

	log.WithFields(log.Fields{
		"Width":  width,
		"Height": height,
		"FPS":    fps,
	}).Info("window opened")

	var (
		keys   keyboard
		canvas canvas
	)
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		s.Frame(keys, canvas, time.Duration(rl.GetFrameTime()*float32(time.Second)))
		rl.EndDrawing()
	}

	log.Info("window closed")
	return nil
}

// keyboard reads the arrow keys as they are held this frame.
type keyboard struct{}

var keyCodes = map[rules.Direction]int32{
	rules.Up:    rl.KeyUp,
	rules.Down:  rl.KeyDown,
	rules.Left:  rl.KeyLeft,
	rules.Right: rl.KeyRight,
}

func (keyboard) Held(d rules.Direction) bool {
	return rl.IsKeyDown(keyCodes[d])
}

func (keyboard) ResetRequested() bool {
	return rl.IsKeyPressed(rl.KeyR)
}

// canvas draws straight into the current raylib frame.
type canvas struct{}

func (canvas) FillRect(r rules.Rect, c rules.Color) {
	rl.DrawRectangle(r.X, r.Y, r.W, r.H, rl.NewColor(c.R, c.G, c.B, c.A))
}

func (canvas) DrawText(text string, x, y, size int32, c rules.Color) {
	rl.DrawText(text, x, y, size, rl.NewColor(c.R, c.G, c.B, c.A))
}
