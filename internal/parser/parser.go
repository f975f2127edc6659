package parser

import (
	"regexp"
	"strings"

	"github.com/atikulmunna/weft/internal/model"
)

// Mode identifies which record shape the stream is producing.
type Mode int

const (
	// DetectingBrief parses brief records while watching for timestamped
	// lines; seeing one promotes the parser permanently.
	DetectingBrief Mode = iota
	// LockedTimestamped parses timestamped records only. There is no way
	// back: logcat never drops the time column mid-stream.
	LockedTimestamped
)

// The two record shapes logcat emits:
//
//	brief:  <sev>/<tag>(<pid>): <message>
//	time:   <timestamp> <sev>/<tag>(<pid>): <message>
//
// The timestamp is a greedy run of digits, colons, dashes, periods and
// spaces up to the point a severity letter followed by '/' begins.
var (
	reBrief = regexp.MustCompile(`^([A-Z])/([^\(]+)\(([^\)]+)\): (.*)$`)
	reTime  = regexp.MustCompile(`^([\-:\. 0-9]+) ([A-Z])/([^\(]+)\(([^\)]+)\): (.*)$`)
)

// Parser classifies raw logcat lines against the brief and timestamped
// record shapes, auto-detecting which one the stream uses.
type Parser struct {
	mode Mode
}

// New creates a Parser starting in the given mode. A spawned logcat runs in
// a known format; piped input starts in DetectingBrief and self-corrects.
func New(mode Mode) *Parser { return &Parser{mode: mode} }

// Mode returns the parser's current mode.
func (p *Parser) Mode() Mode { return p.mode }

// Parse decomposes one line (without its terminator) into a Record. ok is
// false when the line fits neither shape; such lines are not errors and
// pass through unmodified.
func (p *Parser) Parse(line string) (rec model.Record, ok bool) {
	if p.mode == LockedTimestamped {
		return p.parseTime(line)
	}

	if m := reBrief.FindStringSubmatch(line); m != nil {
		return model.Record{
			Severity: model.Severity(m[1]),
			Tag:      strings.TrimSpace(m[2]),
			PID:      strings.TrimSpace(m[3]),
			Message:  m[4],
		}, true
	}

	// Logs arriving over a pipe may carry the time column even though we
	// defaulted to brief. One timestamped line locks the mode for good.
	rec, ok = p.parseTime(line)
	if ok {
		p.mode = LockedTimestamped
	}
	return rec, ok
}

func (p *Parser) parseTime(line string) (model.Record, bool) {
	m := reTime.FindStringSubmatch(line)
	if m == nil {
		return model.Record{}, false
	}
	return model.Record{
		Timestamp:   m[1],
		Timestamped: true,
		Severity:    model.Severity(m[2]),
		Tag:         strings.TrimSpace(m[3]),
		PID:         strings.TrimSpace(m[4]),
		Message:     m[5],
	}, true
}
