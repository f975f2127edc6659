package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atikulmunna/weft/internal/layout"
	"github.com/atikulmunna/weft/internal/parser"
)

// Policy selects how the driver reacts to a record whose severity code is
// not one of the five recognized letters.
type Policy int

const (
	// FailOnUnknownSeverity stops the stream cold, emitting nothing for
	// the offending line or anything after it. This mirrors the original
	// highlighter and is the default.
	FailOnUnknownSeverity Policy = iota
	// PassUnknownSeverity writes the raw line through unmodified and
	// keeps going, the safer behavior offered as a labeled deviation.
	PassUnknownSeverity
)

// Source supplies raw text lines. ReadLine returns one line including its
// terminator, or io.EOF once the stream is exhausted; a final unterminated
// line may arrive together with io.EOF. Sources translate cancellation
// into io.EOF so the driver sees every graceful ending the same way.
type Source interface {
	ReadLine() (string, error)
	Close() error
}

// Driver owns the read-parse-render-write loop. It is strictly sequential:
// each line is fully emitted before the next is read.
type Driver struct {
	parser  *parser.Parser
	engine  *layout.Engine
	out     io.Writer
	columns int
	policy  Policy
	lineNo  int
}

// New creates a Driver writing rendered lines to out, wrapped to columns
// terminal columns.
func New(p *parser.Parser, e *layout.Engine, out io.Writer, columns int, policy Policy) *Driver {
	return &Driver{parser: p, engine: e, out: out, columns: columns, policy: policy}
}

// Run consumes src until end of stream, cancellation, or a fatal unknown
// severity code. The first two return nil; the third returns an error
// wrapping layout.ErrUnknownSeverity so the caller can decide how loudly
// to exit.
func (d *Driver) Run(ctx context.Context, src Source) error {
	for {
		raw, err := src.ReadLine()
		if len(raw) > 0 {
			if werr := d.emit(raw); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
	}
}

// emit writes the rendered form of raw, or raw itself when it matches
// neither record shape. The line counter advances for every matched line,
// even one whose rendering then fails.
func (d *Driver) emit(raw string) error {
	body, eol := splitTerminator(raw)

	rec, ok := d.parser.Parse(body)
	if !ok {
		_, err := io.WriteString(d.out, raw)
		return err
	}

	d.lineNo++
	rec.Line = d.lineNo

	rendered, err := d.engine.Render(rec, d.columns)
	if err != nil {
		if d.policy == PassUnknownSeverity && errors.Is(err, layout.ErrUnknownSeverity) {
			_, werr := io.WriteString(d.out, raw)
			return werr
		}
		return err
	}

	_, err = io.WriteString(d.out, rendered+eol)
	return err
}

// splitTerminator separates a line from its trailing newline so output can
// reuse the input's own termination, \r\n included. A final line with no
// terminator stays that way.
func splitTerminator(line string) (body, eol string) {
	if strings.HasSuffix(line, "\n") {
		line = line[:len(line)-1]
		eol = "\n"
		if strings.HasSuffix(line, "\r") {
			line = line[:len(line)-1]
			eol = "\r\n"
		}
	}
	return line, eol
}
