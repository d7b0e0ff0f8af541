package exec

import (
	"context"
	"testing"
	"time"
)

func TestRun_Success(t *testing.T) {
	ctx := context.Background()
	res, err := Run(ctx, "go", []string{"env", "GOHOSTOS"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", res.ExitCode)
	}
	if res.Stdout == "" {
		t.Error("expected stdout output, got empty")
	}
	if res.TimedOut() || res.NotFound() {
		t.Error("success run flagged as timeout or missing executable")
	}
}

func TestRun_NotFound(t *testing.T) {
	res, _ := Run(context.Background(), "no-such-inspector-binary", nil, "")
	if res.ExitCode != ExitNotFound {
		t.Errorf("expected exit code %d for missing command, got %d", ExitNotFound, res.ExitCode)
	}
	if !res.NotFound() {
		t.Error("NotFound() should report true")
	}
}

func TestRun_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res, _ := Run(ctx, "sleep", []string{"2"}, "")
	if res.NotFound() {
		t.Skip("sleep command not found, skipping timeout test")
	}

	if res.ExitCode != ExitTimeout {
		t.Errorf("expected exit code %d for timeout, got %d", ExitTimeout, res.ExitCode)
	}
	if !res.TimedOut() {
		t.Error("TimedOut() should report true")
	}
}
