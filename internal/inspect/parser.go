// Package inspect drives the external package-manager license inspector and
// parses its output. The inspector's JSON is a raw, tool-defined format and
// is parsed here as its own concern; it never goes through the persisted
// finding decoder.
package inspect

import (
	"encoding/json"
	"fmt"

	"attriscan/internal/model"
)

// inspection is the inspector's raw report for one manifest.
type inspection struct {
	Dependencies []dependency `json:"dependencies"`
}

type dependency struct {
	Name             string          `json:"name"`
	Version          string          `json:"version"`
	DeclaredLicenses json.RawMessage `json:"declared_licenses"` // string or []string
	LicenseFile      string          `json:"license_file"`
	Copyrights       []string        `json:"copyrights"`
}

// ParseInspection converts the inspector's JSON output into license
// findings. Each dependency contributes one finding per declared license,
// located at its license file when the inspector reports one, else at the
// manifest that pulled the dependency in. Raw copyright strings are attached
// unprocessed; normalization happens later in the pipeline.
func ParseInspection(jsonOutput string, manifestPath string) ([]model.LicenseFinding, error) {
	var report inspection
	if err := json.Unmarshal([]byte(jsonOutput), &report); err != nil {
		return nil, fmt.Errorf("unmarshal inspector output: %w", err)
	}

	var findings []model.LicenseFinding
	for i, dep := range report.Dependencies {
		licenses, err := declaredLicenses(dep.DeclaredLicenses)
		if err != nil {
			return nil, fmt.Errorf("dependency %s@%s (index %d): %w", dep.Name, dep.Version, i, err)
		}

		path := dep.LicenseFile
		if path == "" {
			path = manifestPath
		}
		loc := model.TextLocation{Path: path, StartLine: 1, EndLine: 1}

		copyrights := make([]model.CopyrightFinding, 0, len(dep.Copyrights))
		for _, statement := range dep.Copyrights {
			copyrights = append(copyrights, model.CopyrightFinding{Statement: statement, Location: loc})
		}

		for _, license := range licenses {
			findings = append(findings, model.NewLicenseFinding(license, []model.TextLocation{loc}, copyrights))
		}
	}

	return findings, nil
}

// declaredLicenses accepts both shapes the inspector emits: a single license
// string, or an array of them. An absent or empty value maps to the empty
// ("unknown") license.
func declaredLicenses(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return []string{""}, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("declared_licenses is neither string nor array: %w", err)
	}
	if len(many) == 0 {
		return []string{""}, nil
	}
	return many, nil
}
