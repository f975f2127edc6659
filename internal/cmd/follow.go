package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/weft/internal/parser"
	"github.com/atikulmunna/weft/internal/source"
)

var followCmd = &cobra.Command{
	Use:   "follow [paths...]",
	Short: "Colorize logcat lines appended to files",
	Long: `Follow one or more files (or glob patterns) containing logcat output
and colorize new lines as they are appended. Following starts at the end
of each file.

Examples:
  weft follow /tmp/device.log
  weft follow "logs/**/*.txt"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFollow,
}

func init() {
	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, err := source.NewFollow(ctx, args)
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	defer src.Close()

	banner("following " + strings.Join(args, " "))
	return view(ctx, src, parser.DetectingBrief)
}
