package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"attriscan/internal/aggregate"
	"attriscan/internal/config"
	"attriscan/internal/detect"
	"attriscan/internal/logger"
	"attriscan/internal/model"
	"attriscan/internal/pipeline"
	"attriscan/internal/report"
)

var processOutDir string

var processCmd = &cobra.Command{
	Use:   "process <findings-file>...",
	Short: "load persisted findings in any historical shape and re-emit them canonically",
	Long: `Reads findings files (JSON or YAML) written by any past version of the
tool, upgrades them to the canonical shape, normalizes and merges their
copyright statements, removes configured garbage statements, and writes a
fresh report. A malformed record aborts the load and is reported with its
file and index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processOutDir, "out", "", "output directory (overrides config)")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel)

	outDir := cfg.Output.Dir
	if processOutDir != "" {
		outDir = processOutDir
	}

	findings, err := pipeline.LoadAll(cmd.Context(), args)
	if err != nil {
		return err
	}
	findings = aggregate.Findings(findings)

	fm := pipeline.Attributions(findings, cfg.Copyrights.Garbage)

	meta := report.NewMeta(strings.Join(args, ", "), detect.DetectionResult{})
	if err := report.Generate(outDir, meta, findings, report.AttributionsFrom(fm)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printSummary(outDir, findings, fm, 0)
	return nil
}

func printSummary(outDir string, findings []model.LicenseFinding, fm model.FindingsMap, inspectorErrors int) {
	bold := color.New(color.Bold)

	statements := 0
	for _, license := range fm.Licenses() {
		statements += len(fm.Statements(license))
	}

	bold.Printf("attriscan: %d findings, %d licenses, %d copyright statements\n",
		len(findings), fm.Len(), statements)
	if inspectorErrors > 0 {
		color.Yellow("%d manifests could not be inspected (see report)", inspectorErrors)
	}
	fmt.Printf("reports written to %s\n", outDir)
}
