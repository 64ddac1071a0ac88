package analysis

import (
	"math"
	"sort"

	"github.com/kavinbapat/top-songs/internal/genre"
	"github.com/kavinbapat/top-songs/internal/store"
)

const (
	LabelClean    = "Clean"
	LabelExplicit = "Explicit"
)

// FullRange returns the range spanning every valid release year in table.
func FullRange(table *store.Table) (YearRange, bool) {
	first, last, ok := table.YearBounds()
	if !ok {
		return YearRange{}, false
	}
	return YearRange{Min: first, Max: last}, true
}

// Filter returns a new slice with the tracks released within years. Tracks
// with a missing release date are never selected.
func Filter(tracks []store.Track, years YearRange) []store.Track {
	var out []store.Track
	for _, t := range tracks {
		year, ok := t.ReleaseDate.Year()
		if ok && years.Contains(year) {
			out = append(out, t)
		}
	}
	return out
}

// YearHistogram counts tracks per release year, ascending by year.
func YearHistogram(tracks []store.Track) []YearCount {
	counts := make(map[int]int)
	for _, t := range tracks {
		if year, ok := t.ReleaseDate.Year(); ok {
			counts[year]++
		}
	}

	out := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// GenreDistribution counts tracks per genre bucket, most frequent first.
// Other always comes last regardless of its count. Buckets with minCount
// tracks or fewer are dropped.
func GenreDistribution(tracks []store.Track, minCount int) []BucketCount {
	counts := make(map[genre.Bucket]int)
	for _, t := range tracks {
		counts[t.Genre]++
	}

	out := make([]BucketCount, 0, len(counts))
	for b, count := range counts {
		if count <= minCount {
			continue
		}
		out = append(out, BucketCount{Genre: b, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Genre == genre.Other) != (b.Genre == genre.Other) {
			return b.Genre == genre.Other
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return genre.Rank(a.Genre) < genre.Rank(b.Genre)
	})
	return out
}

// ExplicitDistribution counts clean and explicit tracks. Both labels are
// always present, most frequent first.
func ExplicitDistribution(tracks []store.Track) []LabelCount {
	var explicit int
	for _, t := range tracks {
		if t.Explicit {
			explicit++
		}
	}
	clean := len(tracks) - explicit

	if explicit > clean {
		return []LabelCount{{LabelExplicit, explicit}, {LabelClean, clean}}
	}
	return []LabelCount{{LabelClean, clean}, {LabelExplicit, explicit}}
}

// DurationDistribution bins track durations after dropping everything above
// the outlier bound of this set of tracks.
func DurationDistribution(tracks []store.Track, binSeconds float64) DurationHistogram {
	if binSeconds <= 0 {
		binSeconds = defaultBinSeconds
	}
	durations := make([]float64, len(tracks))
	for i, t := range tracks {
		durations[i] = t.DurationSeconds
	}

	hist := DurationHistogram{Bounds: OutlierBound(durations)}
	counts := make(map[int]int)
	lo, hi := math.MaxInt, math.MinInt
	for _, d := range durations {
		if hist.Bounds.Excludes(d) {
			hist.Excluded++
			continue
		}
		hist.Included++
		bin := int(math.Floor(d / binSeconds))
		counts[bin]++
		lo = min(lo, bin)
		hi = max(hi, bin)
	}

	for bin := lo; bin <= hi; bin++ {
		hist.Bins = append(hist.Bins, DurationBin{
			Start: float64(bin) * binSeconds,
			End:   float64(bin+1) * binSeconds,
			Count: counts[bin],
		})
	}
	return hist
}

// TrackPoints returns track-level rows for scatter display, sorted by
// release date. The outlier bound is computed over every track passed in, so
// includeZero only decides whether zero-popularity rows are reported.
func TrackPoints(tracks []store.Track, includeZero bool) Scatter {
	durations := make([]float64, len(tracks))
	for i, t := range tracks {
		durations[i] = t.DurationSeconds
	}
	scatter := Scatter{Bounds: OutlierBound(durations)}

	var survivors []store.Track
	for _, t := range tracks {
		if !includeZero && t.Popularity == 0 {
			continue
		}
		if scatter.Bounds.Excludes(t.DurationSeconds) {
			scatter.Excluded++
			continue
		}
		survivors = append(survivors, t)
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].ReleaseDate.Before(survivors[j].ReleaseDate)
	})

	for _, t := range survivors {
		scatter.Points = append(scatter.Points, TrackPoint{
			TrackName:       t.TrackName,
			ArtistNames:     t.ArtistNames,
			AlbumName:       t.AlbumName,
			ReleaseDate:     t.ReleaseDate.String(),
			DurationSeconds: t.DurationSeconds,
			Popularity:      t.Popularity,
		})
	}
	return scatter
}

// Aggregate computes every distribution over the tracks released within
// years. includeZero only affects the track-level rows. An empty selection
// is a zero-count result, not an error.
func Aggregate(table *store.Table, years YearRange, includeZero bool, opts Options) *AggregateResult {
	tracks := Filter(table.Tracks(), years)
	return &AggregateResult{
		Years:      years,
		Total:      len(tracks),
		YearCounts: YearHistogram(tracks),
		Genres:     GenreDistribution(tracks, opts.MinGenreCount),
		Explicit:   ExplicitDistribution(tracks),
		Durations:  DurationDistribution(tracks, opts.binSeconds()),
		Tracks:     TrackPoints(tracks, includeZero),
	}
}

// GenreBuckets lists the buckets present anywhere in table, in taxonomy
// order. No year filter applies.
func GenreBuckets(table *store.Table) []genre.Bucket {
	present := make(map[genre.Bucket]bool)
	table.Each(func(t store.Track) {
		present[t.Genre] = true
	})

	var out []genre.Bucket
	for _, b := range genre.Buckets() {
		if present[b] {
			out = append(out, b)
		}
	}
	return out
}
