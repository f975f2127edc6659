package layout

import (
	"strconv"
	"strings"

	"github.com/atikulmunna/weft/internal/model"
	"github.com/atikulmunna/weft/internal/palette"
)

// reset clears all attributes so field colors never bleed into neighbors
// or onto the terminal after the program exits.
const reset = "\x1b[0m"

// style describes one SGR escape sequence: optional foreground and
// background colors plus an intensity attribute. When neither bold nor dim
// is set the sequence still carries the explicit normal-intensity code 22.
type style struct {
	fg, bg       palette.Color
	hasFg, hasBg bool
	bright       bool // bright background variant (100-107 range)
	bold, dim    bool
}

func (s style) String() string {
	codes := make([]string, 0, 3)
	if s.hasFg {
		codes = append(codes, "3"+strconv.Itoa(int(s.fg)))
	}
	if s.hasBg {
		if s.bright {
			codes = append(codes, "10"+strconv.Itoa(int(s.bg)))
		} else {
			codes = append(codes, "4"+strconv.Itoa(int(s.bg)))
		}
	}
	switch {
	case s.bold:
		codes = append(codes, "1")
	case s.dim:
		codes = append(codes, "2")
	default:
		codes = append(codes, "22")
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// procStyle paints the process-id field dark gray: black on bright black.
var procStyle = style{fg: palette.Black, hasFg: true, bg: palette.Black, hasBg: true, bright: true}

// badges maps each recognized severity to its badge colors.
var badges = map[model.Severity]style{
	model.SeverityVerbose: {fg: palette.White, hasFg: true, bg: palette.Black, hasBg: true},
	model.SeverityDebug:   {fg: palette.Black, hasFg: true, bg: palette.Blue, hasBg: true},
	model.SeverityInfo:    {fg: palette.Black, hasFg: true, bg: palette.Green, hasBg: true},
	model.SeverityWarn:    {fg: palette.Black, hasFg: true, bg: palette.Yellow, hasBg: true},
	model.SeverityError:   {fg: palette.Black, hasFg: true, bg: palette.Red, hasBg: true},
}
