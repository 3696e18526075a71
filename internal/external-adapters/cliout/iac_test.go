package cliout

import (
	"encoding/json"
	"reflect"
	"testing"
)

const iacArray = `[{"Title":"Healthcheck Not Set","Description":"Check that HEALTHCHECK is used","SimilarityID":"abc123",` +
	`"FilePath":"Dockerfile","Severity":"Medium","ExpectedValue":"HEALTHCHECK defined","ActualValue":"missing",` +
	`"Locations":[{"Line":1,"StartIndex":0,"EndIndex":10}]},` +
	`{"Title":"Root User","Severity":"High","FilePath":"Dockerfile","Locations":[{"Line":4,"StartIndex":0,"EndIndex":8}]},` +
	`{"Title":"Latest Tag","Severity":"Low","FilePath":"Dockerfile"}]`

const iacSingle = `{"Title":"Root User","SimilarityID":"def456","FilePath":"main.tf","Severity":"High"}`

func TestParseIac_NoResult(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace", "\n\t "},
		{"log line", "Scanning Dockerfile..."},
		{"invalid json", `[{"Title":`},
		{"scalar root", `"Results"`},
		{"number root", `42`},
		{"element not an object", `[{"Title":"a"},"b"]`},
		{"null element", `[null]`},
		{"title not a string", `{"Title":{"en":"x"}}`},
		{"two documents", `{"Title":"a"}{"Title":"b"}`},
		{"huge location", `{"Title":"a","Locations":[{"Line":1e20}]}`},
		{"negative huge location", `[{"Title":"a","Locations":[{"EndIndex":-5e30}]}]`},
	}

	p := NewResultParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ParseIac(tt.line); got != nil {
				t.Errorf("ParseIac(%q) = %+v, want nil", tt.line, got)
			}
		})
	}
}

func TestParseIac_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		titles []string
	}{
		{"array keeps order", iacArray, []string{"Healthcheck Not Set", "Root User", "Latest Tag"}},
		{"single object", iacSingle, []string{"Root User"}},
		{"padded single object", "  " + iacSingle + "\n", []string{"Root User"}},
		{"empty array", `[]`, []string{}},
		{"empty object", `{}`, []string{""}},
	}

	p := NewResultParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseIac(tt.line)
			if got == nil {
				t.Fatal("ParseIac() returned nil")
			}
			titles := make([]string, 0, len(got.Results))
			for _, issue := range got.Results {
				titles = append(titles, issue.Title)
				if issue.Locations == nil {
					t.Errorf("issue %q has nil Locations", issue.Title)
				}
			}
			if !reflect.DeepEqual(titles, tt.titles) {
				t.Errorf("titles = %v, want %v", titles, tt.titles)
			}
		})
	}
}

func TestParseIac_Fields(t *testing.T) {
	got := NewResultParser(nil).ParseIac(iacArray)
	if got == nil {
		t.Fatal("ParseIac() returned nil")
	}
	issue := got.Results[0]
	if issue.SimilarityID != "abc123" || issue.ExpectedValue != "HEALTHCHECK defined" || issue.ActualValue != "missing" {
		t.Errorf("issue = %+v", issue)
	}
	if len(issue.Locations) != 1 || issue.Locations[0].EndIndex != 10 {
		t.Errorf("Locations = %+v", issue.Locations)
	}
}

func TestParseIac_RoundTrip(t *testing.T) {
	p := NewResultParser(nil)
	first := p.ParseIac(iacArray)
	if first == nil {
		t.Fatal("ParseIac() returned nil")
	}

	data, err := json.Marshal(first.Results)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if second := p.ParseIac(string(data)); !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", second, first)
	}

	itemData, err := json.Marshal(first.Results[1])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	single := p.ParseIac(string(itemData))
	if single == nil || len(single.Results) != 1 || !reflect.DeepEqual(single.Results[0], first.Results[1]) {
		t.Errorf("item round trip mismatch: %+v", single)
	}
}

func TestParseIac_Idempotent(t *testing.T) {
	p := NewResultParser(nil)
	for _, line := range []string{iacArray, iacSingle} {
		if a, b := p.ParseIac(line), p.ParseIac(line); !reflect.DeepEqual(a, b) {
			t.Errorf("two decodes differ: %+v vs %+v", a, b)
		}
	}
}
