// Package detect locates package-manager manifests that the license
// inspector can run against.
package detect

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DetectionResult groups discovered manifest paths by package manager.
type DetectionResult struct {
	Npm   []string `json:"npm"`
	Go    []string `json:"go"`
	Cargo []string `json:"cargo"`
	NuGet []string `json:"nuget"`
}

// Manifests returns every detected manifest path, sorted.
func (r DetectionResult) Manifests() []string {
	out := make([]string, 0, len(r.Npm)+len(r.Go)+len(r.Cargo)+len(r.NuGet))
	out = append(out, r.Npm...)
	out = append(out, r.Go...)
	out = append(out, r.Cargo...)
	out = append(out, r.NuGet...)
	sort.Strings(out)
	return out
}

// Directories containing dependency trees or build output, never scanned.
var ignoredDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"target":       {},
	"bin":          {},
	"obj":          {},
	".venv":        {},
	"venv":         {},
}

// DetectManifests walks root for package-manager manifests, skipping ignored
// directories. Returned paths are absolute and sorted per ecosystem.
func DetectManifests(root string) (DetectionResult, error) {
	var res DetectionResult

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return res, err
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if _, ok := ignoredDirs[info.Name()]; ok {
				return fs.SkipDir
			}
			return nil
		}

		switch name := strings.ToLower(info.Name()); {
		case name == "package.json":
			res.Npm = append(res.Npm, path)
		case name == "go.mod":
			res.Go = append(res.Go, path)
		case name == "cargo.toml":
			res.Cargo = append(res.Cargo, path)
		case strings.HasSuffix(name, ".csproj"):
			res.NuGet = append(res.NuGet, path)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	sort.Strings(res.Npm)
	sort.Strings(res.Go)
	sort.Strings(res.Cargo)
	sort.Strings(res.NuGet)

	return res, nil
}
