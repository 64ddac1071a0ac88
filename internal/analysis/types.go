package analysis

import "github.com/kavinbapat/top-songs/internal/genre"

// YearRange is an inclusive range of release years.
type YearRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether year lies within the range, inclusive on both ends.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Options tunes presentation-level details of the aggregations.
type Options struct {
	// Width of each duration histogram bin, in seconds. Zero means 30.
	DurationBinSeconds int

	// Genre buckets with this many tracks or fewer are omitted. Default is
	// all buckets.
	MinGenreCount int
}

// DefaultOptions matches the dashboard's defaults.
func DefaultOptions() Options {
	return Options{DurationBinSeconds: defaultBinSeconds}
}

const defaultBinSeconds = 30

func (o Options) binSeconds() float64 {
	if o.DurationBinSeconds <= 0 {
		return defaultBinSeconds
	}
	return float64(o.DurationBinSeconds)
}

type YearCount struct {
	Year  int `yaml:"year"`
	Count int `yaml:"count"`
}

type BucketCount struct {
	Genre genre.Bucket `yaml:"genre"`
	Count int          `yaml:"count"`
}

type LabelCount struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// Bounds are the quartiles and widened Tukey fence of a duration sample.
type Bounds struct {
	Q1    float64 `yaml:"q1"`
	Q3    float64 `yaml:"q3"`
	Upper float64 `yaml:"upper"`
}

type DurationBin struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Count int     `yaml:"count"`
}

// DurationHistogram is the duration distribution with outliers removed.
type DurationHistogram struct {
	Bounds   Bounds        `yaml:"bounds"`
	Included int           `yaml:"included"`
	Excluded int           `yaml:"excluded"`
	Bins     []DurationBin `yaml:"bins"`
}

// TrackPoint is one track-level row for scatter-style display.
type TrackPoint struct {
	TrackName       string  `yaml:"track_name"`
	ArtistNames     string  `yaml:"artist_names"`
	AlbumName       string  `yaml:"album_name"`
	ReleaseDate     string  `yaml:"release_date"`
	DurationSeconds float64 `yaml:"duration_seconds"`
	Popularity      int     `yaml:"popularity"`
}

// Scatter is the filtered, outlier-trimmed track-level row set.
type Scatter struct {
	Bounds   Bounds       `yaml:"bounds"`
	Excluded int          `yaml:"excluded"`
	Points   []TrackPoint `yaml:"points"`
}

// AggregateResult holds every aggregation for one year range.
type AggregateResult struct {
	Years      YearRange         `yaml:"years"`
	Total      int               `yaml:"total"`
	YearCounts []YearCount       `yaml:"year_counts"`
	Genres     []BucketCount     `yaml:"genres"`
	Explicit   []LabelCount      `yaml:"explicit"`
	Durations  DurationHistogram `yaml:"durations"`
	Tracks     Scatter           `yaml:"tracks"`
}

// Report is the top-level structure for the dataset summary report.
type Report struct {
	Metadata  ReportMetadata    `yaml:"metadata"`
	Years     []YearCount       `yaml:"release_years"`
	Genres    []BucketCount     `yaml:"genres"`
	Explicit  []LabelCount      `yaml:"explicit"`
	Durations DurationHistogram `yaml:"durations"`
}

type ReportMetadata struct {
	ID            string    `yaml:"id"`
	GeneratedDate string    `yaml:"generated_date"`
	TotalTracks   int       `yaml:"total_tracks"`
	InRange       int       `yaml:"tracks_in_range"`
	MissingDates  int       `yaml:"missing_dates"`
	Warnings      int       `yaml:"warnings"`
	YearBounds    YearRange `yaml:"year_bounds"`
	Selected      YearRange `yaml:"selected_years"`
}
