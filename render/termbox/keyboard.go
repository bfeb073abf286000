package termbox

import (
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
)

// keyboard turns terminal key presses into held keys. Terminals only report
// presses, so a press counts as held for a fixed number of frames, long
// enough to be seen by the next logical step.
type keyboard struct {
	held  map[rules.Direction]int
	hold  int
	reset bool
}

func newKeyboard(hold int) *keyboard {
	if hold < 1 {
		hold = 1
	}
	return &keyboard{
		held: map[rules.Direction]int{},
		hold: hold,
	}
}

func (k *keyboard) Held(d rules.Direction) bool {
	return k.held[d] > 0
}

func (k *keyboard) ResetRequested() bool {
	r := k.reset
	k.reset = false
	return r
}

// handle applies an event and reports whether the player asked to quit.
func (k *keyboard) handle(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	case termbox.KeyArrowUp:
		k.press(rules.Up)
	case termbox.KeyArrowDown:
		k.press(rules.Down)
	case termbox.KeyArrowLeft:
		k.press(rules.Left)
	case termbox.KeyArrowRight:
		k.press(rules.Right)
	}
	switch ev.Ch {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		k.reset = true
	case 'w':
		k.press(rules.Up)
	case 's':
		k.press(rules.Down)
	case 'a':
		k.press(rules.Left)
	case 'd':
		k.press(rules.Right)
	}
	return false
}

// press makes d the only held key.
func (k *keyboard) press(d rules.Direction) {
	for h := range k.held {
		delete(k.held, h)
	}
	k.held[d] = k.hold
}

// endFrame ages every held key by one frame.
func (k *keyboard) endFrame() {
	for d, n := range k.held {
		if n <= 1 {
			delete(k.held, d)
			continue
		}
		k.held[d] = n - 1
	}
}
