package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/atikulmunna/weft/internal/driver"
	"github.com/atikulmunna/weft/internal/layout"
	"github.com/atikulmunna/weft/internal/palette"
	"github.com/atikulmunna/weft/internal/parser"
	"github.com/atikulmunna/weft/internal/source"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

func runView(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		src  driver.Source
		mode = parser.DetectingBrief
		err  error
	)

	if isatty.IsTerminal(os.Stdin.Fd()) {
		format := viper.GetString("format")
		if format != "brief" && format != "time" {
			return fmt.Errorf("unknown format %q (want brief or time)", format)
		}
		if format == "time" {
			mode = parser.LockedTimestamped
		}

		deviceFlag := ""
		switch {
		case useDevice && useEmulator:
			return errors.New("--device and --emulator are mutually exclusive")
		case useDevice:
			deviceFlag = "-d"
		case useEmulator:
			deviceFlag = "-e"
		}

		banner(fmt.Sprintf("adb %s logcat -v %s %s",
			deviceFlag, format, strings.Join(args, " ")))
		src, err = source.NewCommand(ctx, deviceFlag, format, args)
	} else {
		src, err = source.NewPipe(ctx, os.Stdin)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	return view(ctx, src, mode)
}

// view wires the parser, palette, layout and driver together and runs the
// stream to completion. Shared by the root command and follow.
func view(ctx context.Context, src driver.Source, mode parser.Mode) error {
	cfg := layout.Config{
		NumberWidth:  viper.GetInt("number_width"),
		BadgeWidth:   viper.GetInt("badge_width"),
		TagWidth:     viper.GetInt("tag_width"),
		ProcessWidth: viper.GetInt("process_width"),
		TimeWidth:    viper.GetInt("time_width"),
	}

	policy := driver.FailOnUnknownSeverity
	if viper.GetString("on_unknown_severity") == "pass" {
		policy = driver.PassUnknownSeverity
	}

	engine := layout.New(cfg, palette.New())
	d := driver.New(parser.New(mode), engine, os.Stdout, terminalWidth(), policy)

	err := d.Run(ctx, src)
	if errors.Is(err, layout.ErrUnknownSeverity) {
		// The original tool stops dead here and still exits zero. Keep
		// that, with a stderr note so the silence is explainable.
		fmt.Fprintln(os.Stderr, noteStyle.Render(
			"weft: stream stopped on an unrecognized severity code (run with --on-unknown-severity=pass to keep going)"))
		return nil
	}
	return err
}

// terminalWidth reports the stdout width in columns, falling back to 80
// when stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func banner(detail string) {
	fmt.Fprintln(os.Stderr, bannerStyle.Render("weft"), noteStyle.Render(detail))
}
