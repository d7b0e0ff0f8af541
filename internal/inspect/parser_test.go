package inspect

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseInspection(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "inspect_npm.json"))
	if err != nil {
		t.Fatal(err)
	}

	findings, err := ParseInspection(string(data), "/proj/package.json")
	if err != nil {
		t.Fatalf("ParseInspection failed: %v", err)
	}

	// left-pad: 1, dual-lib: 2 (one per license), mystery-pkg: 1 (unknown).
	if len(findings) != 4 {
		t.Fatalf("expected 4 findings, got %d", len(findings))
	}

	byLicense := map[string]int{}
	for _, f := range findings {
		byLicense[f.License()]++
	}
	for _, license := range []string{"WTFPL", "MIT", "Apache-2.0", ""} {
		if byLicense[license] != 1 {
			t.Errorf("expected 1 finding for license %q, got %d", license, byLicense[license])
		}
	}

	for _, f := range findings {
		switch f.License() {
		case "WTFPL":
			locs := f.Locations()
			if len(locs) != 1 || locs[0].Path != "node_modules/left-pad/LICENSE" {
				t.Errorf("unexpected WTFPL locations: %v", locs)
			}
			if len(f.Copyrights()) != 1 {
				t.Errorf("expected 1 copyright for WTFPL, got %d", len(f.Copyrights()))
			}
		case "MIT", "Apache-2.0":
			if len(f.Copyrights()) != 2 {
				t.Errorf("expected 2 copyrights for %s, got %d", f.License(), len(f.Copyrights()))
			}
		case "":
			// No license file reported: falls back to the manifest.
			locs := f.Locations()
			if len(locs) != 1 || locs[0].Path != "/proj/package.json" {
				t.Errorf("unexpected fallback locations: %v", locs)
			}
		}
	}
}

func TestParseInspection_BadJSON(t *testing.T) {
	if _, err := ParseInspection("{not json", "m"); err == nil {
		t.Error("expected error for malformed inspector output")
	}
}

func TestParseInspection_BadLicenseField(t *testing.T) {
	in := `{"dependencies": [{"name": "x", "version": "1", "declared_licenses": 42}]}`
	_, err := ParseInspection(in, "m")
	if err == nil {
		t.Fatal("expected error for non-string declared_licenses")
	}
}
