package rules

// Color is an RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Colors used by Draw.
var (
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Red    = Color{R: 230, G: 41, B: 55, A: 255}
	Orange = Color{R: 255, G: 161, B: 0, A: 255}
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
)

// Rect is an axis aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Canvas is the drawing surface a host hands to Draw each frame.
type Canvas interface {
	FillRect(r Rect, c Color)
	DrawText(text string, x, y, size int32, c Color)
}
