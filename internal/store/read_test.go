package store

import (
	"testing"
	"time"
)

func TestNormalizeReleaseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1969-09-26", "1969-09-26"},
		{" 2001-02-03 ", "2001-02-03"},
		{"1999-05", "1999-05-01"},
		{"2002", "2002-01-01"},
		{"1962.0", "1962-01-01"},
		{"1962.5.1", "1962-01-01"},
		{"1999-13-01", "missing"},
		{"1999-02-30", "missing"},
		{"2020-1-1", "missing"},
		{"-", "missing"},
		{"", "missing"},
		{"nan", "missing"},
		{"62", "missing"},
		{".1999", "missing"},
	}

	for _, tc := range tests {
		got := NormalizeReleaseDate(tc.raw)
		if got.String() != tc.want {
			t.Errorf("NormalizeReleaseDate(%q) = %s; want %s", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeReleaseDateExact(t *testing.T) {
	got := NormalizeReleaseDate("2015-07-04")
	want := time.Date(2015, time.July, 4, 0, 0, 0, 0, time.UTC)
	if !got.Valid() || !got.Time().Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.Time())
	}
	year, ok := got.Year()
	if !ok || year != 2015 {
		t.Errorf("expected year 2015, got %d (%v)", year, ok)
	}
}

func TestMissingDate(t *testing.T) {
	d := NormalizeReleaseDate("garbage")
	if d != MissingDate {
		t.Errorf("expected MissingDate, got %v", d)
	}
	if _, ok := d.Year(); ok {
		t.Errorf("MissingDate should not have a year")
	}
	if !d.Time().IsZero() {
		t.Errorf("MissingDate should have the zero time")
	}
	if d == NormalizeReleaseDate("0001-01-01") {
		t.Errorf("MissingDate should differ from every valid date")
	}
}

func TestReleaseDateBefore(t *testing.T) {
	early := NormalizeReleaseDate("1960")
	late := NormalizeReleaseDate("1970")

	if !early.Before(late) || late.Before(early) {
		t.Errorf("expected 1960 before 1970")
	}
	if !late.Before(MissingDate) {
		t.Errorf("expected valid dates to sort before MissingDate")
	}
	if MissingDate.Before(early) || MissingDate.Before(MissingDate) {
		t.Errorf("MissingDate should never sort first")
	}
}

func TestParsePopularity(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"57", 57, false},
		{"57.0", 57, false},
		{"-3", 0, true},
		{"high", 0, true},
	}
	for _, tc := range tests {
		got, err := parsePopularity(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Errorf("parsePopularity(%q) error = %v; wantErr %v", tc.raw, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("parsePopularity(%q) = %d; want %d", tc.raw, got, tc.want)
		}
	}
}
