package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/atikulmunna/weft/internal/model"
	"github.com/atikulmunna/weft/internal/palette"
)

func newEngine() *Engine {
	return New(DefaultConfig(), palette.New())
}

func TestRenderBriefExample(t *testing.T) {
	e := newEngine()

	rec := model.Record{
		Line:     1,
		Severity: model.SeverityInfo,
		Tag:      "ActivityManager",
		PID:      "123",
		Message:  "Starting activity",
	}

	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}

	// ActivityManager is seeded cyan; the process id sits centered on a
	// bright-black background; the tag is right-aligned in 25 columns.
	want := " 1     " +
		"\x1b[30;100;22m" + "  123   " + "\x1b[0m " +
		"\x1b[36;22m" + "          ActivityManager \x1b[0m" +
		"\x1b[30;42;22m" + " I " + "\x1b[0m " +
		"Starting activity"
	if got != want {
		t.Errorf("render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderFieldOrder(t *testing.T) {
	e := newEngine()

	rec := model.Record{
		Line:     7,
		Severity: model.SeverityWarn,
		Tag:      "SurfaceFlinger",
		PID:      "88",
		Message:  "late frame",
	}

	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}

	order := []string{" 7     ", "   88   ", "SurfaceFlinger", " W ", "late frame"}
	pos := -1
	for _, part := range order {
		i := strings.Index(got, part)
		if i < 0 {
			t.Fatalf("missing %q in %q", part, got)
		}
		if i <= pos {
			t.Errorf("field %q out of order in %q", part, got)
		}
		pos = i
	}
}

func TestRenderTimestamped(t *testing.T) {
	e := newEngine()

	rec := model.Record{
		Line:        3,
		Severity:    model.SeverityError,
		Tag:         "Crash",
		PID:         "1",
		Timestamp:   "01-02 03:04:05.678",
		Timestamped: true,
		Message:     "boom",
	}

	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "[01-02 03:04:05.678] ") {
		t.Errorf("timestamp column missing in %q", got)
	}
}

func TestRenderTimestampPadded(t *testing.T) {
	e := newEngine()

	rec := model.Record{
		Line:        1,
		Severity:    model.SeverityVerbose,
		Tag:         "X",
		PID:         "1",
		Timestamp:   "1:2",
		Timestamped: true,
		Message:     "m",
	}

	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}
	// "[1:2] " is 6 chars, padded out to the 21-column time field.
	if !strings.Contains(got, "[1:2] "+strings.Repeat(" ", 15)+"m") {
		t.Errorf("time field not left-justified to width 21: %q", got)
	}
}

func TestRenderTagTruncation(t *testing.T) {
	e := newEngine()

	long := "AVeryLongTagNameThatExceedsTheColumn" // 36 chars
	rec := model.Record{Line: 1, Severity: model.SeverityDebug, Tag: long, PID: "1", Message: "x"}

	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}

	want := long[len(long)-25:]
	if !strings.Contains(got, want) {
		t.Errorf("expected trailing 25 chars %q in %q", want, got)
	}
	if strings.Contains(got, long) {
		t.Errorf("full overlong tag should not appear in %q", got)
	}
}

func TestRenderUnknownSeverity(t *testing.T) {
	e := newEngine()

	rec := model.Record{Line: 1, Severity: "Z", Tag: "Foo", PID: "1", Message: "bar"}
	out, err := e.Render(rec, 200)
	if !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("expected ErrUnknownSeverity, got %v", err)
	}
	if out != "" {
		t.Errorf("failed render must produce no output, got %q", out)
	}
}

func TestRenderOmitsProcessField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProcessWidth = -1
	e := New(cfg, palette.New())

	rec := model.Record{Line: 1, Severity: model.SeverityInfo, Tag: "Foo", PID: "123", Message: "x"}
	got, err := e.Render(rec, 200)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "\x1b[30;100;22m") {
		t.Errorf("process field should be omitted entirely: %q", got)
	}
	if strings.Contains(got, "123") {
		t.Errorf("process id should not appear when the field is disabled: %q", got)
	}
}

func TestHeaderWidth(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.HeaderWidth(false); got != 46 {
		t.Errorf("brief header width: expected 46, got %d", got)
	}
	if got := cfg.HeaderWidth(true); got != 67 {
		t.Errorf("timestamped header width: expected 67, got %d", got)
	}

	cfg.ProcessWidth = 0
	if got := cfg.HeaderWidth(false); got != 37 {
		t.Errorf("header width without process field: expected 37, got %d", got)
	}
}

func TestIndentWrapEmpty(t *testing.T) {
	if got := indentWrap("", 46, 80); got != "" {
		t.Errorf("empty message must wrap to empty string, got %q", got)
	}
}

func TestIndentWrapShortMessageUnchanged(t *testing.T) {
	if got := indentWrap("short", 46, 80); got != "short" {
		t.Errorf("message shorter than the area must pass unchanged, got %q", got)
	}
}

func TestIndentWrapExactChunks(t *testing.T) {
	// 15 chars into a 5-column area: exactly 3 chunks, no trailing pad.
	got := indentWrap("abcdefghijklmno", 46, 51)
	pad := "\n" + strings.Repeat(" ", 46)
	want := "abcde" + pad + "fghij" + pad + "klmno"
	if got != want {
		t.Errorf("wrap mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestIndentWrapNoRoom(t *testing.T) {
	// A header wider than the terminal leaves the message unwrapped
	// rather than looping forever.
	if got := indentWrap("message", 100, 80); got != "message" {
		t.Errorf("expected unwrapped message, got %q", got)
	}
}

func TestCenterMatchesClassicAlignment(t *testing.T) {
	cases := []struct {
		in   string
		w    int
		want string
	}{
		{"123", 8, "  123   "},
		{"V", 3, " V "},
		{"12345", 8, " 12345  "},
		{"toolong", 3, "toolong"},
	}
	for _, c := range cases {
		if got := center(c.in, c.w); got != c.want {
			t.Errorf("center(%q, %d): got %q, want %q", c.in, c.w, got, c.want)
		}
	}
}

func TestStyleCodes(t *testing.T) {
	cases := []struct {
		s    style
		want string
	}{
		{style{fg: palette.Cyan, hasFg: true}, "\x1b[36;22m"},
		{style{fg: palette.Black, hasFg: true, bg: palette.Green, hasBg: true}, "\x1b[30;42;22m"},
		{style{fg: palette.Black, hasFg: true, bg: palette.Black, hasBg: true, bright: true}, "\x1b[30;100;22m"},
		{style{fg: palette.Red, hasFg: true, bold: true}, "\x1b[31;1m"},
		{style{fg: palette.Red, hasFg: true, dim: true}, "\x1b[31;2m"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("style %+v: got %q, want %q", c.s, got, c.want)
		}
	}
}
