package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// StartOptions control a single Start invocation.
type StartOptions struct {
	DryRun bool
	Budget time.Duration // 0 means no limit
}

// Start resolves the configured start command and runs it, writing the
// command's stdout to w. With no command configured it logs and succeeds.
func (a *App) Start(ctx context.Context, w io.Writer, opts StartOptions) error {
	cmdline, _, err := a.Settings.Value("start_command")
	if err != nil {
		return err
	}
	argv := strings.Fields(cmdline)
	if len(argv) == 0 {
		a.Log.Info("no start command configured, nothing to run")
		return nil
	}

	if opts.DryRun {
		a.Log.Info("dry run, would execute", zap.Strings("argv", argv))
		return nil
	}

	if opts.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Budget)
		defer cancel()
	}

	a.Log.Debug("starting", zap.String("cmdline", cmdline))
	code, out, err := a.Runner.Run(ctx, argv)
	if err != nil {
		return fmt.Errorf("running %q: %w", cmdline, err)
	}
	if out != "" {
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	if code != 0 {
		// An expired budget also surfaces as a non-zero exit; report it as a
		// timeout rather than a crash.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%q timed out after %s: %w", cmdline, opts.Budget, ctxErr)
		}
		return fmt.Errorf("%q exited with code %d", cmdline, code)
	}
	return nil
}
