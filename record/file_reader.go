package record

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

var openFileReader = fileReader

type reader interface {
	ReadBytes(delim byte) ([]byte, error)
	Close() error
}

type bufferedFile struct {
	*bufio.Reader
	f *os.File
}

func (b *bufferedFile) Close() error { return b.f.Close() }

func fileReader(path string) (reader, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &bufferedFile{Reader: bufio.NewReader(f), f: f}, nil
}

// Reader reads a recording line by line.
type Reader struct {
	r    reader
	info Info
	done bool
}

// Open opens a recording and reads its header.
func Open(path string) (*Reader, error) {
	r, err := openFileReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "record: unable to open %s", path)
	}

	rd := &Reader{r: r}
	more, err := readLine(r, &rd.info)
	if err != nil {
		r.Close()
		return nil, errors.Wrap(err, "record: bad header")
	}
	rd.done = !more
	return rd, nil
}

// Info returns the board header.
func (rd *Reader) Info() Info { return rd.info }

// Next returns the next frame. ok is false once the recording is exhausted.
func (rd *Reader) Next() (Frame, bool, error) {
	if rd.done {
		return Frame{}, false, nil
	}
	f := Frame{}
	more, err := readLine(rd.r, &f)
	if err == errEmptyLine {
		rd.done = true
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	rd.done = !more
	return f, true, nil
}

// Close closes the underlying file.
func (rd *Reader) Close() error {
	return rd.r.Close()
}

// ReadGame loads a whole recording.
func ReadGame(path string) (Info, []Frame, error) {
	rd, err := Open(path)
	if err != nil {
		return Info{}, nil, err
	}
	defer rd.Close()

	frames := []Frame{}
	for {
		f, ok, err := rd.Next()
		if err != nil {
			return Info{}, nil, err
		}
		if !ok {
			break
		}
		frames = append(frames, f)
	}
	return rd.info, frames, nil
}

var errEmptyLine = errors.New("record: empty line")

func readLine(r reader, out interface{}) (bool, error) {
	bytes, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, err
	}
	if len(bytes) == 0 && eof {
		return false, errEmptyLine
	}

	if err = json.Unmarshal(bytes, out); err != nil {
		return false, err
	}

	return !eof, nil
}
