// Package pipeline connects the stages of a scan: loading persisted
// findings, running the inspector, and applying the copyright
// transformations. Every stage works on independent inputs, so the parallel
// parts need no coordination beyond collecting results.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"attriscan/internal/aggregate"
	"attriscan/internal/copyrights"
	"attriscan/internal/inspect"
	"attriscan/internal/logger"
	"attriscan/internal/model"
	"attriscan/internal/report"
)

// LoadFindingsFile reads one persisted findings file, accepting every legacy
// finding shape. The codec is chosen by extension: .json, or .yaml/.yml.
// A bad record fails the whole file with its index; skipping bad records is a
// caller policy this loader does not implement.
func LoadFindingsFile(path string) ([]model.LicenseFinding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSONFindings(data, path)
	case ".yaml", ".yml":
		return decodeYAMLFindings(data, path)
	default:
		return nil, fmt.Errorf("%s: unsupported findings format %q", path, filepath.Ext(path))
	}
}

func decodeJSONFindings(data []byte, path string) ([]model.LicenseFinding, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%s: not a findings list: %w", path, err)
	}
	out := make([]model.LicenseFinding, 0, len(elems))
	for i, e := range elems {
		var f model.LicenseFinding
		if err := json.Unmarshal(e, &f); err != nil {
			return nil, fmt.Errorf("%s: finding %d: %w", path, i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeYAMLFindings(data []byte, path string) ([]model.LicenseFinding, error) {
	var elems []yaml.Node
	if err := yaml.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%s: not a findings list: %w", path, err)
	}
	out := make([]model.LicenseFinding, 0, len(elems))
	for i := range elems {
		var f model.LicenseFinding
		if err := elems[i].Decode(&f); err != nil {
			return nil, fmt.Errorf("%s: finding %d: %w", path, i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// LoadAll loads several findings files concurrently and merges the result.
// The first failing file aborts the load.
func LoadAll(ctx context.Context, paths []string) ([]model.LicenseFinding, error) {
	g, ctx := errgroup.WithContext(ctx)
	perFile := make([][]model.LicenseFinding, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			findings, err := LoadFindingsFile(path)
			if err != nil {
				return err
			}
			perFile[i] = findings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.LicenseFinding
	for _, findings := range perFile {
		all = append(all, findings...)
	}
	return all, nil
}

// InspectAll runs the inspector over every manifest concurrently. Manifests
// the inspector cannot process become InspectorErrors in the report meta
// instead of aborting the scan.
func InspectAll(ctx context.Context, manifests []string, settings inspect.Settings, timeout time.Duration, outDir string) ([]model.LicenseFinding, []report.InspectorError) {
	var (
		mu      sync.Mutex
		all     []model.LicenseFinding
		errs    []report.InspectorError
		g, gctx = errgroup.WithContext(ctx)
	)

	log := logger.L()
	for _, manifest := range manifests {
		manifest := manifest
		g.Go(func() error {
			runCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			start := time.Now()
			findings, err := inspect.Inspect(runCtx, manifest, settings, outDir)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn("inspection failed",
					zap.String("manifest", manifest),
					zap.Error(err))
				errs = append(errs, report.InspectorError{Manifest: manifest, Message: err.Error()})
				return nil
			}
			log.Info("inspected manifest",
				zap.String("manifest", manifest),
				zap.Int("findings", len(findings)),
				zap.Duration("duration", time.Since(start)))
			all = append(all, findings...)
			return nil
		})
	}
	_ = g.Wait() // goroutines only ever return nil; failures land in errs

	sort.Slice(errs, func(i, j int) bool { return errs[i].Manifest < errs[j].Manifest })
	return aggregate.Findings(all), errs
}

// Attributions builds the processed copyright view: collapse findings into
// the license -> statements map, normalize/merge the statements, then drop
// exact garbage matches. Key order stays ascending throughout.
func Attributions(findings []model.LicenseFinding, garbage []string) model.FindingsMap {
	fm := model.FindingsMapFrom(findings)
	fm = fm.Process(copyrights.Process)
	return fm.RemoveGarbage(garbage)
}
