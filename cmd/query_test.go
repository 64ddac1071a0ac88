package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

func TestPrintQueryYears(t *testing.T) {
	var out bytes.Buffer
	if err := printQuery(&out, testConfig(t), "Album Release Date", nil); err != nil {
		t.Fatalf("printQuery: %v", err)
	}
	output := out.String()
	for _, want := range []string{"1962", "1970", "2020", "Found 4 tracks released from 1962 to 2020"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, output)
		}
	}
}

func TestPrintQueryGenresOtherLast(t *testing.T) {
	var out bytes.Buffer
	if err := printQuery(&out, testConfig(t), "genre", nil); err != nil {
		t.Fatalf("printQuery: %v", err)
	}
	output := out.String()
	rock := strings.Index(output, "rock")
	hipHop := strings.Index(output, "hip hop")
	other := strings.Index(output, "other")
	if rock < 0 || hipHop < 0 || other < 0 {
		t.Fatalf("Expected rock, hip hop and other in output:\n%s", output)
	}
	if !(rock < hipHop && hipHop < other) {
		t.Errorf("Expected rock, then hip hop, then other:\n%s", output)
	}
}

func TestPrintQueryUnknownCategory(t *testing.T) {
	var out bytes.Buffer
	if err := printQuery(&out, testConfig(t), "popularity", nil); err != nil {
		t.Fatalf("printQuery: %v", err)
	}
	if !strings.Contains(out.String(), analysis.Placeholder) {
		t.Errorf("Expected placeholder, got:\n%s", out.String())
	}
}

func TestPrintQueryEmptyRange(t *testing.T) {
	var out bytes.Buffer
	if err := printQuery(&out, testConfig(t), "explicit", []string{"1800", "1850"}); err != nil {
		t.Fatalf("printQuery: %v", err)
	}
	// Explicit always has both rows, so it renders a table of zeros.
	if !strings.Contains(out.String(), "Found 0 tracks") {
		t.Errorf("Expected a zero count, got:\n%s", out.String())
	}

	out.Reset()
	if err := printQuery(&out, testConfig(t), "genre", []string{"1800-1850"}); err != nil {
		t.Fatalf("printQuery: %v", err)
	}
	if !strings.Contains(out.String(), "No tracks found.") {
		t.Errorf("Expected an empty state, got:\n%s", out.String())
	}
}

func TestPrintQueryYAML(t *testing.T) {
	config := testConfig(t)
	config.Format = formatYAML
	config.IncludeZeroPopularity = true

	var out bytes.Buffer
	if err := printQuery(&out, config, "track", []string{"1960-1970"}); err != nil {
		t.Fatalf("printQuery: %v", err)
	}

	var res analysis.Result
	if err := yaml.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out.String())
	}
	if res.Category != "track" || res.Total != 3 {
		t.Errorf("Unexpected result: %+v", res)
	}
	if res.Tracks == nil || len(res.Tracks.Points) != 3 {
		t.Fatalf("Expected 3 track points with zero popularity included, got %+v", res.Tracks)
	}
}

func TestPrintQueryErrors(t *testing.T) {
	config := testConfig(t)

	var out bytes.Buffer
	if err := printQuery(&out, config, "genre", []string{"derp"}); err == nil || !strings.Contains(err.Error(), "Invalid format") {
		t.Errorf("Expected invalid format error, got %v", err)
	}

	config.Format = "xml"
	if err := printQuery(&out, config, "genre", nil); err == nil {
		t.Errorf("Expected error for an unknown output format")
	}

	config = testConfig(t)
	config.DataPath = filepath.Join(t.TempDir(), "missing.csv")
	if err := printQuery(&out, config, "genre", nil); err == nil {
		t.Errorf("Expected error for a missing data file")
	}
}

func TestPrintTracks(t *testing.T) {
	var out bytes.Buffer
	if err := printTracks(&out, testConfig(t), "album", []string{"1960", "1970"}); err != nil {
		t.Fatalf("printTracks: %v", err)
	}
	output := out.String()
	for _, want := range []string{"Endless", "Bridge", "150:00"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "First") {
		t.Errorf("Zero-popularity track should be skipped:\n%s", output)
	}

	if err := printTracks(&out, testConfig(t), "genre", nil); err == nil {
		t.Errorf("Expected error for an invalid label")
	}
}

func TestPrintDurations(t *testing.T) {
	config := testConfig(t)
	config.Options.DurationBinSeconds = 60

	var out bytes.Buffer
	if err := printCategory(&out, config, analysis.Duration, []string{"1962"}); err != nil {
		t.Fatalf("printCategory: %v", err)
	}
	// Quartiles over {200, 9000} put the bound well above both tracks.
	output := out.String()
	if !strings.Contains(output, "3:00-4:00") || !strings.Contains(output, "Left out 0 tracks") {
		t.Errorf("Unexpected duration output:\n%s", output)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{
		0:      "0:00",
		59.6:   "1:00",
		200:    "3:20",
		9000:   "150:00",
		259.94: "4:20",
	}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q; want %q", in, got, want)
		}
	}
}
