package cliout

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ochairo/astwrap/internal/domain/entities"
)

const ossLine = `{"Packages":[{"PackageManager":"npm","PackageName":"lodash","PackageVersion":"4.17.20",` +
	`"FilePath":"package.json","Locations":[{"Line":3,"StartIndex":4,"EndIndex":28}],"Status":"Vulnerable",` +
	`"Vulnerabilities":[{"Id":"CVE-2021-23337","Severity":"High","Description":"Command injection","FixVersion":"4.17.21"}]},` +
	`{"PackageManager":"npm","PackageName":"left-pad","PackageVersion":"1.3.0","FilePath":"package.json","Status":"OK"}]}`

func TestParseOss_NoResult(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n"},
		{"log line", "2024-01-01 INFO starting oss realtime scan"},
		{"missing marker", `{"Results":[]}`},
		{"marker wrong case", `{"packages":[]}`},
		{"truncated", `{"Packages":[{"PackageName":"lodash"`},
		{"trailing data", `{"Packages":[]} done`},
		{"marker in array root", `["Packages"]`},
		{"packages not a list", `{"Packages":"oss"}`},
		{"package not an object", `{"Packages":[123,"abc"]}`},
		{"null package", `{"Packages":[null]}`},
		{"location line not a number", `{"Packages":[{"Locations":[{"Line":"three"}]}]}`},
	}

	p := NewResultParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ParseOss(tt.line); got != nil {
				t.Errorf("ParseOss(%q) = %+v, want nil", tt.line, got)
			}
		})
	}
}

func TestParseOss(t *testing.T) {
	got := NewResultParser(nil).ParseOss(ossLine)
	if got == nil {
		t.Fatal("ParseOss() returned nil")
	}
	if len(got.Packages) != 2 {
		t.Fatalf("Packages = %d, want 2", len(got.Packages))
	}

	first := got.Packages[0]
	if first.PackageName != "lodash" || first.PackageVersion != "4.17.20" || first.Status != "Vulnerable" {
		t.Errorf("first package = %+v", first)
	}
	wantLoc := entities.Location{Line: 3, StartIndex: 4, EndIndex: 28}
	if len(first.Locations) != 1 || first.Locations[0] != wantLoc {
		t.Errorf("Locations = %+v, want [%+v]", first.Locations, wantLoc)
	}
	wantVuln := entities.OssVulnerability{
		ID:          "CVE-2021-23337",
		Severity:    "High",
		Description: "Command injection",
		FixVersion:  "4.17.21",
	}
	if len(first.Vulnerabilities) != 1 || first.Vulnerabilities[0] != wantVuln {
		t.Errorf("Vulnerabilities = %+v, want [%+v]", first.Vulnerabilities, wantVuln)
	}

	second := got.Packages[1]
	if second.Locations == nil || len(second.Locations) != 0 {
		t.Errorf("absent Locations = %#v, want empty slice", second.Locations)
	}
	if second.Vulnerabilities == nil || len(second.Vulnerabilities) != 0 {
		t.Errorf("absent Vulnerabilities = %#v, want empty slice", second.Vulnerabilities)
	}
}

func TestParseOss_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		packages int
	}{
		{"null packages", `{"Packages":null}`, 0},
		{"empty packages", `{"Packages":[]}`, 0},
		{"null nested lists", `{"Packages":[{"PackageName":"a","Locations":null,"Vulnerabilities":null}]}`, 1},
		{"unknown keys ignored", `{"Packages":[{"PackageName":"a","Extra":{"x":1}}],"Version":"2"}`, 1},
		{"leading whitespace", "  \t" + `{"Packages":[]}`, 0},
	}

	p := NewResultParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseOss(tt.line)
			if got == nil {
				t.Fatal("ParseOss() returned nil")
			}
			if got.Packages == nil || len(got.Packages) != tt.packages {
				t.Fatalf("Packages = %#v, want %d items", got.Packages, tt.packages)
			}
			for _, pkg := range got.Packages {
				if pkg.Locations == nil || pkg.Vulnerabilities == nil {
					t.Errorf("package %q has nil collections", pkg.PackageName)
				}
			}
		})
	}
}

func TestParseOss_Coercion(t *testing.T) {
	line := `{"Packages":[{"PackageName":"a","PackageVersion":2,"Locations":[{"Line":"7","StartIndex":1.9,"EndIndex":null}]}]}`
	got := NewResultParser(nil).ParseOss(line)
	if got == nil {
		t.Fatal("ParseOss() returned nil")
	}
	pkg := got.Packages[0]
	if pkg.PackageVersion != "2" {
		t.Errorf("PackageVersion = %q, want %q", pkg.PackageVersion, "2")
	}
	want := entities.Location{Line: 7, StartIndex: 1, EndIndex: 0}
	if pkg.Locations[0] != want {
		t.Errorf("Location = %+v, want %+v", pkg.Locations[0], want)
	}
}

func TestParseOss_RoundTrip(t *testing.T) {
	p := NewResultParser(nil)
	first := p.ParseOss(ossLine)
	if first == nil {
		t.Fatal("ParseOss() returned nil")
	}

	data, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second := p.ParseOss(string(data))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", second, first)
	}

	pkgData, err := json.Marshal(first.Packages[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	single := p.ParseOss(`{"Packages":[` + string(pkgData) + `]}`)
	if single == nil || !reflect.DeepEqual(single.Packages[0], first.Packages[0]) {
		t.Errorf("package round trip mismatch: %+v", single)
	}
}

func TestParseOss_Idempotent(t *testing.T) {
	p := NewResultParser(nil)
	if a, b := p.ParseOss(ossLine), p.ParseOss(ossLine); !reflect.DeepEqual(a, b) {
		t.Errorf("two decodes differ: %+v vs %+v", a, b)
	}
}
