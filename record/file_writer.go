package record

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// Recorder appends frames to a recording file.
type Recorder struct {
	id    string
	path  string
	w     writer
	round int
	turn  int64
}

// Create opens a new recording in dir named after a fresh id.
func Create(dir string) (*Recorder, error) {
	id := uuid.NewV4().String()
	path := FilePath(dir, id)
	w, err := openFileWriter(path, true)
	if err != nil {
		return nil, errors.Wrapf(err, "record: unable to create %s", path)
	}
	return &Recorder{id: id, path: path, w: w}, nil
}

// FilePath is where the recording with the given id lives inside dir.
func FilePath(dir, id string) string {
	return filepath.Join(dir, id+".jsonl")
}

// ID returns the recording id.
func (r *Recorder) ID() string { return r.id }

// Path returns the file the recording is written to.
func (r *Recorder) Path() string { return r.path }

// WriteInfo writes the board header. It must be the first line.
func (r *Recorder) WriteInfo(w *rules.World) error {
	info := toInfo(r.id, w)
	return writeLine(r.w, &info)
}

// WriteStep appends the current state as the next frame of the round.
func (r *Recorder) WriteStep(s *rules.Snake, w *rules.World) error {
	r.turn++
	f := toFrame(r.round, r.turn, s, w)
	return writeLine(r.w, &f)
}

// NextRound starts numbering turns from the beginning for a new round.
func (r *Recorder) NextRound() {
	r.round++
	r.turn = 0
}

// Close flushes and closes the file.
func (r *Recorder) Close() error {
	return r.w.Close()
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func appendOnlyFileWriter(path string, mustCreate bool) (writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		return nil, err
	}

	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if mustCreate {
		flags |= os.O_EXCL
	}
	return os.OpenFile(path, flags, 0644)
}
