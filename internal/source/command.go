package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Command spawns adb logcat and supplies its stdout line by line. When the
// context is cancelled the subprocess is killed, which surfaces to the
// reader as a plain end of stream.
type Command struct {
	cmd    *exec.Cmd
	br     *bufio.Reader
	stdout io.ReadCloser
}

// NewCommand starts `adb [deviceFlag] logcat -v <format> [filters...]`.
// deviceFlag is "-d", "-e", or empty; filters are forwarded verbatim.
func NewCommand(ctx context.Context, deviceFlag, format string, filters []string) (*Command, error) {
	var args []string
	if deviceFlag != "" {
		args = append(args, deviceFlag)
	}
	args = append(args, "logcat", "-v", format)
	args = append(args, filters...)

	cmd := exec.CommandContext(ctx, "adb", args...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("adb stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start adb: %w", err)
	}

	return &Command{cmd: cmd, br: bufio.NewReader(stdout), stdout: stdout}, nil
}

// ReadLine returns the next line of logcat output including its terminator.
func (c *Command) ReadLine() (string, error) {
	return c.br.ReadString('\n')
}

// Close reaps the subprocess. Its exit status is ignored: the process is
// normally torn down by context cancellation, not by exiting on its own.
func (c *Command) Close() error {
	c.stdout.Close()
	_ = c.cmd.Wait()
	return nil
}
