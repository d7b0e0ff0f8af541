// Package report writes scan results in their canonical serialized form.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"attriscan/internal/detect"
	"attriscan/internal/model"
)

// Meta describes one scan run.
type Meta struct {
	RunID           string                 `json:"run_id" yaml:"run_id"`
	ScannedPath     string                 `json:"scanned_path" yaml:"scanned_path"`
	Timestamp       string                 `json:"timestamp" yaml:"timestamp"`
	Detected        detect.DetectionResult `json:"detected" yaml:"detected"`
	InspectorErrors []InspectorError       `json:"inspector_errors" yaml:"inspector_errors"`
}

// InspectorError records a manifest the inspector could not process. The
// scan carries on; the report says so.
type InspectorError struct {
	Manifest string `json:"manifest" yaml:"manifest"`
	Message  string `json:"message" yaml:"message"`
}

// NewMeta stamps a fresh run id and timestamp.
func NewMeta(scannedPath string, detected detect.DetectionResult) Meta {
	return Meta{
		RunID:       uuid.NewString(),
		ScannedPath: scannedPath,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Detected:    detected,
	}
}

// Attribution is one license's processed copyright statements, emitted in
// the findings map's ascending key order.
type Attribution struct {
	License    string   `json:"license" yaml:"license"`
	Statements []string `json:"statements" yaml:"statements"`
}

// Report is the canonical output document. Findings are serialized in their
// full shape, sorted; attributions mirror the processed findings map.
type Report struct {
	Meta         Meta                   `json:"meta" yaml:"meta"`
	Findings     []model.LicenseFinding `json:"findings" yaml:"findings"`
	Attributions []Attribution          `json:"attributions" yaml:"attributions"`
}

// AttributionsFrom flattens a findings map preserving its key order.
func AttributionsFrom(fm model.FindingsMap) []Attribution {
	out := make([]Attribution, 0, fm.Len())
	for _, license := range fm.Licenses() {
		statements := fm.Statements(license)
		if statements == nil {
			statements = []string{}
		}
		out = append(out, Attribution{License: license, Statements: statements})
	}
	return out
}

// Generate writes report.json, report.yaml and report.md under outDir.
// Findings must already be aggregated (deduplicated and sorted).
func Generate(outDir string, meta Meta, findings []model.LicenseFinding, attributions []Attribution) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	if findings == nil {
		findings = []model.LicenseFinding{}
	}
	if attributions == nil {
		attributions = []Attribution{}
	}

	rep := Report{Meta: meta, Findings: findings, Attributions: attributions}

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "report.json"), jsonBytes, 0644); err != nil {
		return err
	}

	yamlBytes, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "report.yaml"), yamlBytes, 0644); err != nil {
		return err
	}

	md := generateMarkdown(meta, findings, attributions)
	return os.WriteFile(filepath.Join(outDir, "report.md"), []byte(md), 0644)
}

func generateMarkdown(meta Meta, findings []model.LicenseFinding, attributions []Attribution) string {
	var sb strings.Builder

	sb.WriteString("# Attriscan Report\n\n")
	fmt.Fprintf(&sb, "**Run:** `%s`\n", meta.RunID)
	fmt.Fprintf(&sb, "**Target:** `%s`\n", meta.ScannedPath)
	fmt.Fprintf(&sb, "**Timestamp:** %s\n\n", meta.Timestamp)

	// License counts.
	counts := make(map[string]int)
	for _, f := range findings {
		counts[f.License()]++
	}
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "%d findings across %d licenses.\n\n", len(findings), len(counts))

	sb.WriteString("## Findings\n\n")
	if len(findings) == 0 {
		sb.WriteString("_No findings._\n")
	} else {
		sb.WriteString("| License | Locations | Copyrights |\n")
		sb.WriteString("| :--- | :--- | :--- |\n")

		limit := min(len(findings), 50)
		for _, f := range findings[:limit] {
			license := f.License()
			if license == "" {
				license = "(unknown)"
			}
			license = strings.ReplaceAll(license, "|", "\\|")

			var locs []string
			for _, l := range f.Locations() {
				locs = append(locs, fmt.Sprintf("%s:%d-%d", l.Path, l.StartLine, l.EndLine))
			}
			fmt.Fprintf(&sb, "| %s | %s | %d |\n", license, strings.Join(locs, ", "), len(f.Copyrights()))
		}
		if len(findings) > limit {
			fmt.Fprintf(&sb, "\n*...and %d more findings inside report.json*\n", len(findings)-limit)
		}
	}

	if len(attributions) > 0 {
		sb.WriteString("\n## Attributions\n\n")
		for _, a := range attributions {
			license := a.License
			if license == "" {
				license = "(unknown)"
			}
			fmt.Fprintf(&sb, "### %s\n\n", license)
			if len(a.Statements) == 0 {
				sb.WriteString("_No copyright statements._\n\n")
				continue
			}
			for _, s := range a.Statements {
				fmt.Fprintf(&sb, "- %s\n", s)
			}
			sb.WriteString("\n")
		}
	}

	if len(meta.InspectorErrors) > 0 {
		fmt.Fprintf(&sb, "\n## Inspector Errors (%d)\n\n", len(meta.InspectorErrors))
		sb.WriteString("| Manifest | Message |\n")
		sb.WriteString("|---|---|\n")
		for _, e := range meta.InspectorErrors {
			msg := strings.ReplaceAll(e.Message, "|", "\\|")
			msg = strings.ReplaceAll(msg, "\n", " ")
			fmt.Fprintf(&sb, "| %s | %s |\n", e.Manifest, msg)
		}
	}

	return sb.String()
}
