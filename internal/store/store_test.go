package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kavinbapat/top-songs/internal/genre"
)

const testHeader = ",Track Name,Artist Name(s),Album Name,Album Release Date,Track Duration (s),Explicit,Artist Genres,Popularity,Label"

func createTestTable(t *testing.T, rows ...string) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.csv")
	content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	table, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) error: %v", path, err)
	}
	return table
}

func TestOpen(t *testing.T) {
	table := createTestTable(t,
		`0,Come Together,The Beatles,Abbey Road,1969-09-26,259.946,false,"beatlesque,british invasion,classic rock",83,Apple`,
		`1,Lose Yourself,Eminem,8 Mile,2002,326.466,True,"detroit hip hop,hip hop,rap",78,Shady`,
		`2,Mystery,Unknown,Unknown,not a date,,maybe,,,`,
	)

	if table.Len() != 3 {
		t.Fatalf("expected 3 tracks, got %d", table.Len())
	}

	tracks := table.Tracks()
	first := tracks[0]
	if first.TrackName != "Come Together" || first.ArtistNames != "The Beatles" || first.AlbumName != "Abbey Road" {
		t.Errorf("unexpected first track: %+v", first)
	}
	if first.ReleaseDate.String() != "1969-09-26" {
		t.Errorf("expected release date 1969-09-26, got %s", first.ReleaseDate)
	}
	if first.DurationSeconds != 259.946 {
		t.Errorf("expected duration 259.946, got %v", first.DurationSeconds)
	}
	if first.Explicit {
		t.Errorf("expected first track to be clean")
	}
	if first.Genre != genre.Other {
		// "beatlesque" is the first token and matches no bucket.
		t.Errorf("expected genre %q, got %q", genre.Other, first.Genre)
	}
	if first.Popularity != 83 {
		t.Errorf("expected popularity 83, got %d", first.Popularity)
	}
	if label, ok := first.Extra("Label"); !ok || label != "Apple" {
		t.Errorf("expected passthrough Label=Apple, got %q (%v)", label, ok)
	}

	second := tracks[1]
	if second.ReleaseDate.String() != "2002-01-01" {
		t.Errorf("expected year-only date to become 2002-01-01, got %s", second.ReleaseDate)
	}
	if !second.Explicit {
		t.Errorf("expected second track to be explicit")
	}
	if second.Genre != genre.HipHop {
		t.Errorf("expected genre %q, got %q", genre.HipHop, second.Genre)
	}

	third := tracks[2]
	if third.ReleaseDate.Valid() {
		t.Errorf("expected missing date, got %s", third.ReleaseDate)
	}
	if third.Genre != genre.Other {
		t.Errorf("expected empty genre to be %q, got %q", genre.Other, third.Genre)
	}
	if third.Popularity != 0 || third.DurationSeconds != 0 || third.Explicit {
		t.Errorf("expected zero values for malformed row, got %+v", third)
	}

	if table.MissingDates() != 1 {
		t.Errorf("expected 1 missing date, got %d", table.MissingDates())
	}
	// Empty duration and "maybe" explicit flag.
	if len(table.Warnings()) != 2 {
		t.Errorf("expected 2 warnings, got %v", table.Warnings())
	}
}

func TestLoadDropsIndexColumn(t *testing.T) {
	table := createTestTable(t, `0,A,B,C,2000-01-01,200,false,pop,10,L`)

	for _, col := range table.Columns() {
		if col == "" {
			t.Errorf("index column was not dropped: %v", table.Columns())
		}
	}
	if got := table.Columns()[len(table.Columns())-1]; got != "Label" {
		t.Errorf("expected passthrough column last, got %q", got)
	}

	r := strings.NewReader("Unnamed: 0,track name,ARTIST NAME(S),Album Name,Album Release Date,Track Duration (s),Explicit,Artist Genres,Popularity\n0,A,B,C,2000,200,false,pop,10\n")
	table, err := Load(r)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(table.Columns()) != len(requiredColumns) {
		t.Errorf("expected only required columns, got %v", table.Columns())
	}
	if _, ok := table.Tracks()[0].Extra("Unnamed: 0"); ok {
		t.Errorf("index column should not be a passthrough column")
	}
}

func TestLoadMissingColumns(t *testing.T) {
	r := strings.NewReader("Track Name,Album Name,Explicit\nA,B,false\n")
	_, err := Load(r)
	if err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	for _, col := range []string{ColumnArtistNames, ColumnReleaseDate, ColumnDuration, ColumnGenres, ColumnPopularity} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error should name %q: %v", col, err)
		}
	}

	_, err = Load(strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumns) {
		t.Errorf("expected ErrMissingColumns for empty input, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected error opening a missing file")
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	table := createTestTable(t, `0,Short Row,Artist,Album,1999-05-01`)
	tr := table.Tracks()[0]
	if tr.ReleaseDate.String() != "1999-05-01" {
		t.Errorf("expected 1999-05-01, got %s", tr.ReleaseDate)
	}
	if tr.Popularity != 0 {
		t.Errorf("expected absent popularity to be 0, got %d", tr.Popularity)
	}
}

func TestTracksReturnsCopy(t *testing.T) {
	table := createTestTable(t, `0,A,B,C,2000-01-01,200,false,pop,10,L`)

	tracks := table.Tracks()
	tracks[0].TrackName = "changed"
	tracks[0].Popularity = 99

	again := table.Tracks()
	if again[0].TrackName != "A" || again[0].Popularity != 10 {
		t.Errorf("mutating Tracks() result changed the table: %+v", again[0])
	}

	cols := table.Columns()
	cols[0] = "changed"
	if table.Columns()[0] != ColumnTrackName {
		t.Errorf("mutating Columns() result changed the table")
	}
}

func TestYearBounds(t *testing.T) {
	table := createTestTable(t,
		`0,A,B,C,1975-01-01,200,false,pop,10,L`,
		`1,A,B,C,bogus,200,false,pop,10,L`,
		`2,A,B,C,1956.0,200,false,pop,10,L`,
		`3,A,B,C,2023-06-01,200,false,pop,10,L`,
	)
	first, last, ok := table.YearBounds()
	if !ok {
		t.Fatalf("expected year bounds")
	}
	if first != 1956 || last != 2023 {
		t.Errorf("expected 1956-2023, got %d-%d", first, last)
	}

	empty := createTestTable(t, `0,A,B,C,bogus,200,false,pop,10,L`)
	if _, _, ok := empty.YearBounds(); ok {
		t.Errorf("expected no bounds when every date is missing")
	}
}
