package cmd

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

func TestRunReport(t *testing.T) {
	path := createTestData(t, testRows...)

	var out bytes.Buffer
	if err := runReport(&out, path, analysis.DefaultOptions(), []string{"1960", "1970"}); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	var report analysis.Report
	if err := yaml.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out.String())
	}
	if report.Metadata.TotalTracks != 4 || report.Metadata.InRange != 3 {
		t.Errorf("Unexpected metadata: %+v", report.Metadata)
	}
	if report.Metadata.YearBounds != (analysis.YearRange{Min: 1962, Max: 2020}) {
		t.Errorf("Unexpected year bounds: %v", report.Metadata.YearBounds)
	}
	if len(report.Genres) != 2 || report.Genres[0].Genre != "rock" {
		t.Errorf("Unexpected genres: %v", report.Genres)
	}
	if len(report.Explicit) != 2 {
		t.Errorf("Unexpected explicit counts: %v", report.Explicit)
	}
}

func TestRunReportInvalidYears(t *testing.T) {
	path := createTestData(t, testRows...)
	if err := runReport(&bytes.Buffer{}, path, analysis.DefaultOptions(), []string{"sixties"}); err == nil {
		t.Fatalf("Expected error for an invalid year")
	}
}
