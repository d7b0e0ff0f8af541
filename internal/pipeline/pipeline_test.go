package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attriscan/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFindingsFile_JSONMixedLegacyShapes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "findings.json", `[
		"MIT",
		{"license": "Apache-2.0", "copyrights": []},
		{"license": "ISC", "locations": [{"path": "LICENSE", "start_line": 1, "end_line": 3}], "copyrights": []}
	]`)

	findings, err := LoadFindingsFile(path)
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "MIT", findings[0].License())
	assert.Empty(t, findings[0].Locations())
	assert.Equal(t, "Apache-2.0", findings[1].License())
	assert.Len(t, findings[2].Locations(), 1)
}

func TestLoadFindingsFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "findings.yaml", `
- MIT
- license: BSD-2-Clause
  locations:
    - path: COPYING
      start_line: 1
      end_line: 10
`)

	findings, err := LoadFindingsFile(path)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "MIT", findings[0].License())
	assert.Equal(t, "BSD-2-Clause", findings[1].License())
}

func TestLoadFindingsFile_BadRecordNamesIndex(t *testing.T) {
	path := writeFile(t, t.TempDir(), "findings.json", `["MIT", {"copyrights": []}]`)

	_, err := LoadFindingsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finding 1")
	assert.Contains(t, err.Error(), "license field missing or invalid")
}

func TestLoadFindingsFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "findings.txt", "MIT")

	_, err := LoadFindingsFile(path)
	assert.Error(t, err)
}

func TestLoadAll_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `["MIT"]`)
	b := writeFile(t, dir, "b.yaml", `["Apache-2.0"]`)

	findings, err := LoadAll(context.Background(), []string{a, b})
	require.NoError(t, err)
	assert.Len(t, findings, 2)
}

func TestLoadAll_FailingFileAborts(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `["MIT"]`)
	bad := writeFile(t, dir, "bad.json", `[{"copyrights": []}]`)

	_, err := LoadAll(context.Background(), []string{a, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestAttributions_ProcessesAndFilters(t *testing.T) {
	loc := model.TextLocation{Path: "LICENSE", StartLine: 1, EndLine: 1}
	findings := []model.LicenseFinding{
		model.NewLicenseFinding("MIT", nil, []model.CopyrightFinding{
			{Statement: "Copyright (c) 2019 Jane Doe", Location: loc},
			{Statement: "copyright 2020 Jane Doe", Location: loc},
			{Statement: "COPYRIGHT HOLDER", Location: loc},
		}),
	}

	fm := Attributions(findings, []string{"COPYRIGHT HOLDER"})

	assert.Equal(t, []string{"MIT"}, fm.Licenses())
	assert.Equal(t, []string{"Copyright (c) 2019-2020 Jane Doe"}, fm.Statements("MIT"))
}
