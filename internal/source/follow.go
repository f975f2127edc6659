package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Follow emits lines appended to files matched by the given glob patterns,
// starting at each file's current end. fsnotify events are folded into the
// same sequential pull API the other sources expose: lines come out one at
// a time, in the order they were appended, and a removed or renamed file
// simply drops out of the set.
type Follow struct {
	ctx     context.Context
	watcher *fsnotify.Watcher
	files   map[string]*followFile
	queue   []string // complete lines ready to hand out, terminators kept
}

type followFile struct {
	f   *os.File
	buf string // trailing partial line awaiting its newline
}

// NewFollow expands patterns (recursive doublestar globs supported) and
// watches every matched file for appended data.
func NewFollow(ctx context.Context, patterns []string) (*Follow, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fl := &Follow{ctx: ctx, watcher: w, files: make(map[string]*followFile)}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			abs, _ := filepath.Abs(m)
			if err := fl.open(abs); err != nil {
				fl.Close()
				return nil, err
			}
		}
	}

	if len(fl.files) == 0 {
		w.Close()
		return nil, fmt.Errorf("no files matched %v", patterns)
	}
	return fl, nil
}

// open starts following path from its current end.
func (fl *Follow) open(path string) error {
	if _, exists := fl.files[path]; exists {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		f.Close()
		return fmt.Errorf("seek %s: %w", path, err)
	}
	if err := fl.watcher.Add(path); err != nil {
		f.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	fl.files[path] = &followFile{f: f}
	return nil
}

// ReadLine blocks until a complete appended line is available. It reports
// io.EOF on cancellation or once every followed file has gone away.
func (fl *Follow) ReadLine() (string, error) {
	for {
		if len(fl.queue) > 0 {
			line := fl.queue[0]
			fl.queue = fl.queue[1:]
			return line, nil
		}
		if len(fl.files) == 0 {
			return "", io.EOF
		}

		select {
		case <-fl.ctx.Done():
			return "", io.EOF
		case ev, ok := <-fl.watcher.Events:
			if !ok {
				return "", io.EOF
			}
			fl.handle(ev)
		case _, ok := <-fl.watcher.Errors:
			if !ok {
				return "", io.EOF
			}
		}
	}
}

func (fl *Follow) handle(ev fsnotify.Event) {
	switch {
	case ev.Op&fsnotify.Write != 0:
		fl.drain(ev.Name)
	case ev.Op&fsnotify.Remove != 0, ev.Op&fsnotify.Rename != 0:
		if ff, ok := fl.files[ev.Name]; ok {
			ff.f.Close()
			delete(fl.files, ev.Name)
		}
	}
}

// drain reads everything appended since the last event, queueing complete
// lines and buffering any trailing partial one until its newline arrives.
func (fl *Follow) drain(path string) {
	ff, ok := fl.files[path]
	if !ok {
		return
	}

	data, err := io.ReadAll(ff.f)
	if err != nil || len(data) == 0 {
		return
	}

	text := ff.buf + string(data)
	ff.buf = ""
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			break
		}
		fl.queue = append(fl.queue, text[:i+1])
		text = text[i+1:]
	}
	ff.buf = text
}

// Close releases all file handles and the watcher.
func (fl *Follow) Close() error {
	for path, ff := range fl.files {
		ff.f.Close()
		delete(fl.files, path)
	}
	return fl.watcher.Close()
}
