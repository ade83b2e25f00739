package shell_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"fixme/internal/shell"
)

func TestRun_CapturesStdout(t *testing.T) {
	r := shell.New(zap.NewNop())

	code, out, err := r.Run(context.Background(), []string{"echo", "hello"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if out != "hello\n" {
		t.Fatalf("output %q, want %q", out, "hello\n")
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	r := shell.New(zap.NewNop())

	code, _, err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code %d, want 3", code)
	}
}

func TestRun_ContextDeadlineKillsChild(t *testing.T) {
	r := shell.New(zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	began := time.Now()
	code, _, err := r.Run(ctx, []string{"sleep", "10"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code == 0 {
		t.Fatal("exit code 0 for a killed child")
	}
	if elapsed := time.Since(began); elapsed > 5*time.Second {
		t.Fatalf("child not killed promptly, took %v", elapsed)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := shell.New(zap.NewNop())

	if _, _, err := r.Run(context.Background(), []string{"definitely-not-a-real-binary-xyz"}); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRun_EmptyCommandLine(t *testing.T) {
	r := shell.New(zap.NewNop())

	if _, _, err := r.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty command line")
	}
}
