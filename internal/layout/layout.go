package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atikulmunna/weft/internal/model"
	"github.com/atikulmunna/weft/internal/palette"
)

// ErrUnknownSeverity is returned by Render when a record's severity code is
// outside the five recognized letters. The driver treats it as fatal to the
// stream unless configured to pass such lines through.
var ErrUnknownSeverity = errors.New("unknown severity code")

// Config fixes the column widths of the rendered header.
type Config struct {
	NumberWidth  int // line-number column
	BadgeWidth   int // severity badge
	TagWidth     int // tag column; longer tags keep their last TagWidth chars
	ProcessWidth int // process-id column; <= 0 omits the field entirely
	TimeWidth    int // timestamp column, occupied in time format only
}

// DefaultConfig returns the classic logcat-highlighter column widths.
func DefaultConfig() Config {
	return Config{
		NumberWidth:  6,
		BadgeWidth:   3,
		TagWidth:     25,
		ProcessWidth: 8,
		TimeWidth:    21,
	}
}

// HeaderWidth is the number of columns consumed before the message body
// starts, including the timestamp column when the stream carries one.
// Continuation lines of a wrapped message are indented by this amount.
func (c Config) HeaderWidth(timestamped bool) int {
	w := 1 + c.NumberWidth + c.BadgeWidth + 1 + c.TagWidth + 1
	if c.ProcessWidth > 0 {
		w += c.ProcessWidth + 1
	}
	if timestamped {
		w += c.TimeWidth
	}
	return w
}

// Engine renders parsed records as fixed-column, colorized terminal lines.
type Engine struct {
	cfg    Config
	colors *palette.Palette
}

// New creates an Engine using the given column widths and tag palette.
func New(cfg Config, colors *palette.Palette) *Engine {
	return &Engine{cfg: cfg, colors: colors}
}

// Render produces the styled line for rec, hard-wrapping the message body
// to fit columns terminal columns. The returned text carries no trailing
// newline. Rendering fails with ErrUnknownSeverity before any palette
// state is touched, so a rejected record leaves no trace.
func (e *Engine) Render(rec model.Record, columns int) (string, error) {
	badge, ok := badges[rec.Severity]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, string(rec.Severity))
	}

	var b strings.Builder

	// Line number behind a single leading space.
	b.WriteString(" ")
	b.WriteString(ljust(strconv.Itoa(rec.Line), e.cfg.NumberWidth))

	// Process id, centered on a dim (bright-black) background.
	if e.cfg.ProcessWidth > 0 {
		b.WriteString(procStyle.String())
		b.WriteString(center(rec.PID, e.cfg.ProcessWidth))
		b.WriteString(reset)
		b.WriteString(" ")
	}

	// Tag, right-aligned, truncated to its trailing characters, colored
	// per the palette. The reset lands after the separator space so the
	// colored span matches the classic output byte for byte.
	tag := rec.Tag
	if len(tag) > e.cfg.TagWidth {
		tag = tag[len(tag)-e.cfg.TagWidth:]
	}
	b.WriteString(style{fg: e.colors.ColorFor(rec.Tag), hasFg: true}.String())
	b.WriteString(rjust(tag, e.cfg.TagWidth))
	b.WriteString(" ")
	b.WriteString(reset)

	// Severity badge.
	b.WriteString(badge.String())
	b.WriteString(center(string(rec.Severity), e.cfg.BadgeWidth))
	b.WriteString(reset)
	b.WriteString(" ")

	// Timestamp column, time format only, original text preserved.
	if rec.Timestamped {
		b.WriteString(ljust("["+rec.Timestamp+"] ", e.cfg.TimeWidth))
	}

	b.WriteString(indentWrap(rec.Message, e.cfg.HeaderWidth(rec.Timestamped), columns))
	return b.String(), nil
}

// indentWrap hard-wraps message into chunks that fit the columns remaining
// after the header, indenting continuation lines to align under the first
// chunk. Not word-aware: logcat payloads routinely have no usable spaces.
// If the header leaves no room at all the message is emitted unwrapped.
func indentWrap(message string, indent, columns int) string {
	area := columns - indent
	if area <= 0 || len(message) <= area {
		return message
	}

	var b strings.Builder
	pad := "\n" + strings.Repeat(" ", indent)
	for current := 0; current < len(message); current += area {
		next := current + area
		if next > len(message) {
			next = len(message)
		}
		if current > 0 {
			b.WriteString(pad)
		}
		b.WriteString(message[current:next])
	}
	return b.String()
}

func ljust(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func rjust(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// center pads s to width w with the odd space on the right, matching the
// alignment the classic highlighter produced.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
