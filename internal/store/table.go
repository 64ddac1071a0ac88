package store

import "github.com/kavinbapat/top-songs/internal/genre"

// Track is one normalized, classified row of the input table.
type Track struct {
	TrackName       string
	ArtistNames     string // may list several artists separated by ','
	AlbumName       string
	ReleaseDate     ReleaseDate
	DurationSeconds float64
	Explicit        bool
	GenreRaw        string
	Genre           genre.Bucket
	Popularity      int

	// Passthrough columns, keyed by header name. Never mutated after load.
	extra map[string]string
}

// Extra returns the value of a passthrough column.
func (t Track) Extra(column string) (string, bool) {
	v, ok := t.extra[column]
	return v, ok
}

// Table is the loaded dataset. It is read-only after Load returns and safe
// for concurrent readers.
type Table struct {
	columns      []string
	tracks       []Track
	warnings     []string
	missingDates int
}

// Tracks returns a copy of every track in input order.
func (t *Table) Tracks() []Track {
	out := make([]Track, len(t.tracks))
	copy(out, t.tracks)
	return out
}

// Each calls fn for every track in input order without copying the table.
func (t *Table) Each(fn func(Track)) {
	for _, tr := range t.tracks {
		fn(tr)
	}
}

func (t *Table) Len() int {
	return len(t.tracks)
}

// Columns lists the canonical columns followed by passthrough columns.
func (t *Table) Columns() []string {
	return append([]string{}, t.columns...)
}

// Warnings lists per-row coercion problems found while loading.
func (t *Table) Warnings() []string {
	return append([]string{}, t.warnings...)
}

// MissingDates counts tracks whose release date could not be normalized.
func (t *Table) MissingDates() int {
	return t.missingDates
}

// YearBounds returns the earliest and latest release years. ok is false when
// no track has a valid date.
func (t *Table) YearBounds() (first, last int, ok bool) {
	for _, tr := range t.tracks {
		year, valid := tr.ReleaseDate.Year()
		if !valid {
			continue
		}
		if !ok || year < first {
			first = year
		}
		if !ok || year > last {
			last = year
		}
		ok = true
	}
	return
}
