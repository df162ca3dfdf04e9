package main

import (
	"strings"
	"testing"
)

func TestNormalizeGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"bare geometry",
			`{"type":"Polygon","coordinates":[[[1,1],[4,1],[4,4],[1,4],[1,1]]]}`,
			`[[[1,1],[1,4],[4,4],[4,1],[1,1]]]`,
		},
		{
			"feature",
			`{"type":"Feature","properties":{"name":"box"},"geometry":{"type":"Polygon","coordinates":[[[1,1],[4,1],[4,4],[1,4],[1,1]]]}}`,
			`[[[1,1],[1,4],[4,4],[4,1],[1,1]]]`,
		},
		{
			"feature collection",
			`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[1,1],[4,1],[4,4],[1,4],[1,1]]]}}]}`,
			`[[[1,1],[1,4],[4,4],[4,1],[1,1]]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := normalizeGeoJSON([]byte(tt.in), nil)
			if err != nil {
				t.Fatalf("normalizeGeoJSON: %v", err)
			}
			if !strings.Contains(string(out), tt.want) {
				t.Errorf("output %s does not contain rewound ring %s", out, tt.want)
			}
		})
	}
}

func TestNormalizeGeoJSON_Invalid(t *testing.T) {
	if _, err := normalizeGeoJSON([]byte("not json"), nil); err == nil {
		t.Error("expected an error for invalid input")
	}
}

func TestNormalizeWKT(t *testing.T) {
	in := "POLYGON((1 1,4 1,4 4,1 4,1 1))"
	out, err := normalizeWKT([]byte(in+"\n"), nil)
	if err != nil {
		t.Fatalf("normalizeWKT: %v", err)
	}
	want := "POLYGON((1 1,1 4,4 4,4 1,1 1))"
	if string(out) != want {
		t.Errorf("normalizeWKT = %q, want %q", out, want)
	}
}
