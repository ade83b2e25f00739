// Package shell runs external commands and captures their output.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner spawns processes and reports their exit code and captured stdout.
type Runner struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Runner { return &Runner{log: log} }

// Run executes argv and returns the exit code and everything the child wrote
// to stdout. The child's stderr passes through untouched. A non-zero child
// exit is reported through the code, not the error; the error is reserved for
// failures to run the command at all.
func (r *Runner) Run(ctx context.Context, argv []string) (int, string, error) {
	if len(argv) == 0 {
		return 0, "", errors.New("empty command line")
	}
	if r.log != nil {
		r.log.Debug("running command", zap.String("cmdline", strings.Join(argv, " ")))
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), string(out), nil
		}
		return -1, "", err
	}
	return 0, string(out), nil
}
