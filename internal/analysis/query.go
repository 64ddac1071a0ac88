package analysis

import (
	"strings"

	"github.com/kavinbapat/top-songs/internal/store"
)

// Category selects which view Run produces.
type Category int

const (
	NoSelection Category = iota
	ReleaseDate
	Genre
	Explicit
	Duration
	TrackName
	AlbumName
	ArtistName
)

// Placeholder is the message returned for an unrecognized category.
const Placeholder = "No category selected"

var categoryNames = map[Category]string{
	NoSelection: "none",
	ReleaseDate: "release-date",
	Genre:       "genre",
	Explicit:    "explicit",
	Duration:    "duration",
	TrackName:   "track",
	AlbumName:   "album",
	ArtistName:  "artist",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[NoSelection]
}

// Categories lists every selectable category.
func Categories() []Category {
	return []Category{ReleaseDate, Genre, Explicit, Duration, TrackName, AlbumName, ArtistName}
}

// ParseCategory accepts a category name or the matching column header.
// Anything else is NoSelection.
func ParseCategory(name string) Category {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "release-date", "year", "years", strings.ToLower(store.ColumnReleaseDate):
		return ReleaseDate
	case "genre", "genres", strings.ToLower(store.ColumnGenres):
		return Genre
	case "explicit":
		return Explicit
	case "duration", "durations", strings.ToLower(store.ColumnDuration), "track duration":
		return Duration
	case "track", strings.ToLower(store.ColumnTrackName):
		return TrackName
	case "album", strings.ToLower(store.ColumnAlbumName):
		return AlbumName
	case "artist", "artist name", strings.ToLower(store.ColumnArtistNames):
		return ArtistName
	}
	return NoSelection
}

type Query struct {
	Category              Category
	Years                 YearRange
	IncludeZeroPopularity bool
}

// Result holds exactly one populated view, chosen by Category. Placeholder
// is set instead when nothing was selected.
type Result struct {
	Category    string             `yaml:"category"`
	Years       YearRange          `yaml:"years"`
	Total       int                `yaml:"total"`
	Placeholder string             `yaml:"placeholder,omitempty"`
	YearCounts  []YearCount        `yaml:"release_years,omitempty"`
	Genres      []BucketCount      `yaml:"genres,omitempty"`
	Explicit    []LabelCount       `yaml:"explicit,omitempty"`
	Durations   *DurationHistogram `yaml:"durations,omitempty"`
	Tracks      *Scatter           `yaml:"tracks,omitempty"`

	// Column used to label each track point.
	Label string `yaml:"label,omitempty"`
}

// Empty reports whether the selected range held no tracks.
func (r Result) Empty() bool {
	return r.Placeholder == "" && r.Total == 0
}

// Run answers q against table.
func Run(table *store.Table, q Query, opts Options) Result {
	res := Result{Category: q.Category.String(), Years: q.Years}
	if _, ok := categoryNames[q.Category]; !ok || q.Category == NoSelection {
		res.Category = NoSelection.String()
		res.Placeholder = Placeholder
		return res
	}

	tracks := Filter(table.Tracks(), q.Years)
	res.Total = len(tracks)

	switch q.Category {
	case ReleaseDate:
		res.YearCounts = YearHistogram(tracks)
	case Genre:
		res.Genres = GenreDistribution(tracks, opts.MinGenreCount)
	case Explicit:
		res.Explicit = ExplicitDistribution(tracks)
	case Duration:
		hist := DurationDistribution(tracks, opts.binSeconds())
		res.Durations = &hist
	case TrackName, AlbumName, ArtistName:
		scatter := TrackPoints(tracks, q.IncludeZeroPopularity)
		res.Tracks = &scatter
		res.Label = labelColumn(q.Category)
	}
	return res
}

func labelColumn(c Category) string {
	switch c {
	case AlbumName:
		return store.ColumnAlbumName
	case ArtistName:
		return store.ColumnArtistNames
	}
	return store.ColumnTrackName
}

// PointLabel returns the value of the label column for p.
func (r Result) PointLabel(p TrackPoint) string {
	switch r.Label {
	case store.ColumnAlbumName:
		return p.AlbumName
	case store.ColumnArtistNames:
		return p.ArtistNames
	}
	return p.TrackName
}
