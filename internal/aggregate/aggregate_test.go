package aggregate

import (
	"testing"

	"attriscan/internal/model"
)

func TestFindings(t *testing.T) {
	loc := model.TextLocation{Path: "LICENSE", StartLine: 1, EndLine: 21}

	mit := model.NewLicenseFinding("MIT", []model.TextLocation{loc}, nil)
	mitDup := model.NewLicenseFinding("MIT", []model.TextLocation{loc}, nil)
	apache := model.NewLicenseFinding("Apache-2.0", nil, nil)
	unknown := model.NewLicenseFinding("", nil, nil)

	input := []model.LicenseFinding{mit, unknown, mitDup, apache}
	result := Findings(input)

	if len(result) != 3 {
		t.Fatalf("expected 3 findings after dedup, got %d", len(result))
	}

	// Sorted by license: "" < "Apache-2.0" < "MIT".
	if result[0].License() != "" {
		t.Errorf("expected first finding to have empty license, got %q", result[0].License())
	}
	if result[1].License() != "Apache-2.0" {
		t.Errorf("expected second finding to be Apache-2.0, got %q", result[1].License())
	}
	if result[2].License() != "MIT" {
		t.Errorf("expected third finding to be MIT, got %q", result[2].License())
	}

	// Input order untouched.
	if input[0].License() != "MIT" {
		t.Error("input slice was reordered")
	}
}

func TestFindings_LocationsDistinguish(t *testing.T) {
	a := model.NewLicenseFinding("MIT", []model.TextLocation{{Path: "a.go", StartLine: 1, EndLine: 1}}, nil)
	b := model.NewLicenseFinding("MIT", []model.TextLocation{{Path: "b.go", StartLine: 1, EndLine: 1}}, nil)

	result := Findings([]model.LicenseFinding{b, a})
	if len(result) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(result))
	}
	if result[0].Locations()[0].Path != "a.go" {
		t.Errorf("expected a.go first, got %s", result[0].Locations()[0].Path)
	}
}
