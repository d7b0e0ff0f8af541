package inspect

import (
	"context"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"

	"attriscan/internal/exec"
	"attriscan/internal/model"
)

// Settings configures the external inspector invocation.
type Settings struct {
	// Command is the inspector executable, resolved via PATH.
	Command string
	// Args are passed before the manifest directory.
	Args []string
}

// DefaultSettings matches the stock inspector installation.
func DefaultSettings() Settings {
	return Settings{Command: "license-inspector", Args: []string{"inspect", "--json"}}
}

// Inspect runs the license inspector against the directory holding
// manifestPath and parses its JSON output into findings. The raw output is
// kept under outDir/raw for debugging. A non-zero inspector exit is
// tolerated (the tool signals policy violations that way); only a missing
// executable or a timeout aborts.
func Inspect(ctx context.Context, manifestPath string, settings Settings, outDir string) ([]model.LicenseFinding, error) {
	workDir := filepath.Dir(manifestPath)

	rawOutDir := filepath.Join(outDir, "raw")
	if err := os.MkdirAll(rawOutDir, 0755); err != nil {
		return nil, fmt.Errorf("create raw output dir: %w", err)
	}

	if _, err := osexec.LookPath(settings.Command); err != nil {
		return nil, fmt.Errorf("inspector executable %q not found in PATH", settings.Command)
	}

	args := append(append([]string{}, settings.Args...), workDir)
	res, err := exec.Run(ctx, settings.Command, args, workDir)
	if res.TimedOut() || res.NotFound() {
		return nil, fmt.Errorf("inspector failed execution (code %d): %v", res.ExitCode, err)
	}

	rawFile := filepath.Join(rawOutDir, fmt.Sprintf("inspect-%s.json", sanitizePath(workDir)))
	if err := os.WriteFile(rawFile, []byte(res.Stdout), 0644); err != nil {
		return nil, fmt.Errorf("write raw output: %w", err)
	}

	findings, err := ParseInspection(res.Stdout, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("parse inspector output for %s: %w", manifestPath, err)
	}
	return findings, nil
}

func sanitizePath(path string) string {
	s := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || r == ' ' {
			return '_'
		}
		return r
	}, path)
	return strings.Trim(s, "_")
}
