package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/cancelreader"
)

// Pipe reads lines from an existing stream, typically logcat output piped
// to stdin. Reads are cancelable so an interrupt arriving while blocked on
// a quiet stream shuts the program down cleanly instead of hanging until
// the next line shows up.
type Pipe struct {
	cr cancelreader.CancelReader
	br *bufio.Reader
}

// NewPipe wraps f in a cancelable line reader tied to ctx. Once ctx is
// done, a blocked ReadLine unwinds and reports io.EOF.
func NewPipe(ctx context.Context, f *os.File) (*Pipe, error) {
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("wrap input: %w", err)
	}

	go func() {
		<-ctx.Done()
		cr.Cancel()
	}()

	return &Pipe{cr: cr, br: bufio.NewReader(cr)}, nil
}

// ReadLine returns the next line including its terminator.
func (p *Pipe) ReadLine() (string, error) {
	line, err := p.br.ReadString('\n')
	if errors.Is(err, cancelreader.ErrCanceled) {
		err = io.EOF
	}
	return line, err
}

// Close releases the underlying reader.
func (p *Pipe) Close() error {
	return p.cr.Close()
}
