package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/kavinbapat/top-songs/internal/store"
)

// GenerateReport summarises every distribution for the tracks released
// within years.
func GenerateReport(table *store.Table, years YearRange, opts Options) *Report {
	report := &Report{}

	// 1. Metadata
	bounds, _ := FullRange(table)
	tracks := Filter(table.Tracks(), years)
	report.Metadata = ReportMetadata{
		ID:            uuid.NewString(),
		GeneratedDate: time.Now().Format("2006-01-02"),
		TotalTracks:   table.Len(),
		InRange:       len(tracks),
		MissingDates:  table.MissingDates(),
		Warnings:      len(table.Warnings()),
		YearBounds:    bounds,
		Selected:      years,
	}

	// 2. Distributions
	report.Years = YearHistogram(tracks)
	report.Genres = GenreDistribution(tracks, opts.MinGenreCount)
	report.Explicit = ExplicitDistribution(tracks)
	report.Durations = DurationDistribution(tracks, opts.binSeconds())

	return report
}
