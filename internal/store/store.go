package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/kavinbapat/top-songs/internal/genre"
)

// ErrMissingColumns is returned when the input table lacks one or more
// required columns.
var ErrMissingColumns = errors.New("missing required columns")

// Canonical column names of the input table.
const (
	ColumnTrackName   = "Track Name"
	ColumnArtistNames = "Artist Name(s)"
	ColumnAlbumName   = "Album Name"
	ColumnReleaseDate = "Album Release Date"
	ColumnDuration    = "Track Duration (s)"
	ColumnExplicit    = "Explicit"
	ColumnGenres      = "Artist Genres"
	ColumnPopularity  = "Popularity"
)

var requiredColumns = []string{
	ColumnTrackName,
	ColumnArtistNames,
	ColumnAlbumName,
	ColumnReleaseDate,
	ColumnDuration,
	ColumnExplicit,
	ColumnGenres,
	ColumnPopularity,
}

// Left behind by saving a dataframe with its index.
var indexColumn = regexp.MustCompile(`(?i)^unnamed: \d+$`)

// Open reads the table at path.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

// Load reads a CSV table, drops index columns, normalizes release dates and
// assigns genre buckets. Malformed values never fail the load; only a header
// missing required columns does.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	s, err := newSchema(header)
	if err != nil {
		return nil, err
	}

	t := &Table{columns: s.columns()}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}

		track, warnings := s.track(rec)
		for _, w := range warnings {
			t.warnings = append(t.warnings, fmt.Sprintf("row %d: %s", line, w))
		}
		if !track.ReleaseDate.Valid() {
			t.missingDates++
		}
		t.tracks = append(t.tracks, track)
	}

	return t, nil
}

// schema maps canonical column names to positions in the raw header.
type schema struct {
	index map[string]int
	extra []extraColumn
}

type extraColumn struct {
	name string
	pos  int
}

func newSchema(header []string) (*schema, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normalizeColumn(h)] = i
	}

	s := &schema{index: make(map[string]int, len(requiredColumns))}
	var missing []string
	for _, col := range requiredColumns {
		pos, ok := byName[normalizeColumn(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		s.index[col] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	used := make(map[int]bool, len(s.index))
	for _, pos := range s.index {
		used[pos] = true
	}
	for i, h := range header {
		name := cleanColumn(h)
		if used[i] || isIndexColumn(name) {
			continue
		}
		s.extra = append(s.extra, extraColumn{name: name, pos: i})
	}
	return s, nil
}

func (s *schema) columns() []string {
	cols := append([]string{}, requiredColumns...)
	for _, e := range s.extra {
		cols = append(cols, e.name)
	}
	return cols
}

func (s *schema) field(rec []string, col string) string {
	return rec[s.index[col]]
}

func (s *schema) track(rec []string) (Track, []string) {
	var warnings []string

	duration, err := parseDuration(s.field(rec, ColumnDuration))
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	popularity, err := parsePopularity(s.field(rec, ColumnPopularity))
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	explicit, err := parseExplicit(s.field(rec, ColumnExplicit))
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	track := Track{
		TrackName:       s.field(rec, ColumnTrackName),
		ArtistNames:     s.field(rec, ColumnArtistNames),
		AlbumName:       s.field(rec, ColumnAlbumName),
		ReleaseDate:     NormalizeReleaseDate(s.field(rec, ColumnReleaseDate)),
		DurationSeconds: duration,
		Explicit:        explicit,
		GenreRaw:        s.field(rec, ColumnGenres),
		Popularity:      popularity,
	}
	track.Genre = genre.Classify(track.GenreRaw)

	if len(s.extra) > 0 {
		track.extra = make(map[string]string, len(s.extra))
		for _, e := range s.extra {
			track.extra[e.name] = rec[e.pos]
		}
	}
	return track, warnings
}

func cleanColumn(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
}

func normalizeColumn(name string) string {
	return strings.ToLower(cleanColumn(name))
}

func isIndexColumn(name string) bool {
	return name == "" || indexColumn.MatchString(name)
}
