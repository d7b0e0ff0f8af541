package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"attriscan/internal/archive"
	"attriscan/internal/config"
	"attriscan/internal/detect"
	"attriscan/internal/inspect"
	"attriscan/internal/logger"
	"attriscan/internal/model"
	"attriscan/internal/pipeline"
	"attriscan/internal/report"
)

var (
	inspectOutDir     string
	inspectTimeoutSec int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "run the license inspector over a project tree and report findings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectOutDir, "out", "", "output directory (overrides config)")
	inspectCmd.Flags().IntVar(&inspectTimeoutSec, "timeout", 0, "per-manifest timeout in seconds (overrides config)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	absPath, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("invalid target path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel)

	outDir := cfg.Output.Dir
	if inspectOutDir != "" {
		outDir = inspectOutDir
	}
	timeoutSec := cfg.Inspector.TimeoutSec
	if inspectTimeoutSec > 0 {
		timeoutSec = inspectTimeoutSec
	}

	detected, err := detect.DetectManifests(absPath)
	if err != nil {
		return fmt.Errorf("detect manifests: %w", err)
	}
	manifests := detected.Manifests()
	if len(manifests) == 0 {
		return fmt.Errorf("no package-manager manifests found under %s", absPath)
	}

	settings := inspect.Settings{Command: cfg.Inspector.Command, Args: cfg.Inspector.Args}
	findings, inspErrs := pipeline.InspectAll(cmd.Context(), manifests, settings,
		time.Duration(timeoutSec)*time.Second, outDir)

	fm := pipeline.Attributions(findings, cfg.Copyrights.Garbage)

	meta := report.NewMeta(absPath, detected)
	meta.InspectorErrors = inspErrs
	if err := report.Generate(outDir, meta, findings, report.AttributionsFrom(fm)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := snapshotResults(outDir, absPath, findings); err != nil {
		// The report is already on disk; a failed snapshot is not fatal.
		logger.S().Warnw("snapshot failed", "error", err)
	}

	printSummary(outDir, findings, fm, len(inspErrs))
	return nil
}

func snapshotResults(outDir, root string, findings []model.LicenseFinding) error {
	store, err := archive.Open(filepath.Join(outDir, "snapshots"))
	if err != nil {
		return err
	}
	key, err := archive.KeyFor(root, findings)
	if err != nil {
		return err
	}
	return store.Put(key, archive.NewSnapshot(root, findings))
}
