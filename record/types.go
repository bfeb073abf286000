// Package record writes a session's steps to an append-only JSON lines file
// and reads them back for replay. The first line holds the board info, every
// following line is one frame.
package record

import "github.com/battlesnakeio/snake/rules"

// Info describes the board a recording was made on.
type Info struct {
	ID        string `json:"id"`
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	Scale     uint32 `json:"scale"`
	TickDelay uint32 `json:"tickDelay"`
}

// Frame is the state of a round right after a logical step.
type Frame struct {
	Round  int           `json:"round"`
	Turn   int64         `json:"turn"`
	Ticker uint32        `json:"ticker"`
	Body   []rules.Point `json:"body"`
	Food   rules.Point   `json:"food"`
	Score  uint32        `json:"score"`
	Alive  bool          `json:"alive"`
	Death  *rules.Death  `json:"death,omitempty"`
}

// Snake rebuilds the snake as it stood in the frame.
func (f Frame) Snake() *rules.Snake {
	s := &rules.Snake{
		Body:   append([]rules.Point(nil), f.Body...),
		Alive:  f.Alive,
		Ticker: f.Ticker,
		Score:  f.Score,
	}
	if f.Death != nil {
		d := *f.Death
		s.Death = &d
	}
	return s
}

func toInfo(id string, w *rules.World) Info {
	return Info{
		ID:        id,
		Width:     w.Width,
		Height:    w.Height,
		Scale:     w.Scale,
		TickDelay: w.TickDelay,
	}
}

func toFrame(round int, turn int64, s *rules.Snake, w *rules.World) Frame {
	f := Frame{
		Round:  round,
		Turn:   turn,
		Ticker: s.Ticker,
		Body:   append([]rules.Point(nil), s.Body...),
		Food:   w.Food,
		Score:  s.Score,
		Alive:  s.Alive,
	}
	if s.Death != nil {
		d := *s.Death
		f.Death = &d
	}
	return f
}
