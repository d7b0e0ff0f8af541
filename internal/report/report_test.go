package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"attriscan/internal/detect"
	"attriscan/internal/model"
)

func TestGenerate_WritesCanonicalReports(t *testing.T) {
	outDir := t.TempDir()

	findings := []model.LicenseFinding{
		model.NewLicenseFinding("MIT",
			[]model.TextLocation{{Path: "LICENSE", StartLine: 1, EndLine: 21}},
			nil,
		),
	}
	fm := model.NewFindingsMap(map[string][]string{"MIT": {"Copyright (c) 2020 Example"}})

	meta := NewMeta("/proj", detect.DetectionResult{})
	require.NotEmpty(t, meta.RunID)

	err := Generate(outDir, meta, findings, AttributionsFrom(fm))
	require.NoError(t, err)

	// JSON report decodes back to equal findings.
	data, err := os.ReadFile(filepath.Join(outDir, "report.json"))
	require.NoError(t, err)

	var rep struct {
		Meta         Meta                   `json:"meta"`
		Findings     []model.LicenseFinding `json:"findings"`
		Attributions []Attribution          `json:"attributions"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, meta.RunID, rep.Meta.RunID)
	require.Len(t, rep.Findings, 1)
	assert.True(t, rep.Findings[0].Equal(findings[0]))
	require.Len(t, rep.Attributions, 1)
	assert.Equal(t, "MIT", rep.Attributions[0].License)

	// YAML twin decodes the same way.
	ydata, err := os.ReadFile(filepath.Join(outDir, "report.yaml"))
	require.NoError(t, err)
	var yrep struct {
		Findings []model.LicenseFinding `yaml:"findings"`
	}
	require.NoError(t, yaml.Unmarshal(ydata, &yrep))
	require.Len(t, yrep.Findings, 1)
	assert.True(t, yrep.Findings[0].Equal(findings[0]))

	// Markdown summary exists and names the license.
	md, err := os.ReadFile(filepath.Join(outDir, "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "MIT")
	assert.Contains(t, string(md), "Copyright (c) 2020 Example")
}

func TestGenerate_EmptyFindings(t *testing.T) {
	outDir := t.TempDir()

	err := Generate(outDir, NewMeta(".", detect.DetectionResult{}), nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "report.json"))
	require.NoError(t, err)
	// Empty sets serialize as arrays, not null.
	assert.Contains(t, string(data), `"findings": []`)
}
