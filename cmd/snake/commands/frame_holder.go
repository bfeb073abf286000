package commands

import (
	"sync"

	"github.com/battlesnakeio/snake/record"
)

type frameHolder struct {
	sync.RWMutex
	frames []*record.Frame
	ffc    chan *record.Frame
}

func (fh *frameHolder) append(frame *record.Frame) {
	fh.Lock()
	defer fh.Unlock()

	if len(fh.frames) == 0 {
		if fh.ffc == nil {
			fh.ffc = make(chan *record.Frame, 1)
		}
		fh.ffc <- frame
		close(fh.ffc)
	}

	fh.frames = append(fh.frames, frame)
}

func (fh *frameHolder) get(index int) *record.Frame {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return nil
	}

	return fh.frames[index]
}

func (fh *frameHolder) initialFrame() <-chan *record.Frame {
	fh.Lock()
	defer fh.Unlock()

	if fh.ffc == nil {
		fh.ffc = make(chan *record.Frame, 1)
	}
	return fh.ffc
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
