// Package genre collapses free-text artist genre strings into a fixed set of
// broad buckets.
package genre

import "strings"

// Bucket is one of the broad genre categories a track is assigned to.
type Bucket string

const (
	HipHop      Bucket = "hip hop"
	Pop         Bucket = "pop"
	Rock        Bucket = "rock"
	Jazz        Bucket = "jazz"
	Blues       Bucket = "blues"
	Country     Bucket = "country"
	Folk        Bucket = "folk"
	Electronic  Bucket = "electronic"
	RnB         Bucket = "r&b"
	Reggae      Bucket = "reggae"
	Metal       Bucket = "metal"
	Punk        Bucket = "punk"
	WorldMusic  Bucket = "world music"
	Indie       Bucket = "indie"
	Alternative Bucket = "alternative"
	Disco       Bucket = "disco"
	Dance       Bucket = "dance"
	Girl        Bucket = "girl"
	Mellow      Bucket = "mellow"
	Band        Bucket = "band"
	Classical   Bucket = "classical"
	Latin       Bucket = "latin"
	Other       Bucket = "other"
)

type rule struct {
	bucket  Bucket
	markers []string
}

// taxonomy is walked in order; the first bucket with a marker contained in the
// token wins.
var taxonomy = []rule{
	{HipHop, []string{"hip hop", "hip-hop", "rap", "trap", "drill", "grime"}},
	{Pop, []string{"pop"}},
	{Rock, []string{"rock"}},
	{Jazz, []string{"jazz", "bebop", "swing"}},
	{Blues, []string{"blues"}},
	{Country, []string{"country", "bluegrass", "americana", "honky tonk"}},
	{Folk, []string{"folk", "singer-songwriter"}},
	{Electronic, []string{"electronic", "electro", "house", "techno", "trance", "edm", "dubstep", "drum and bass"}},
	{RnB, []string{"r&b", "rnb", "soul", "funk", "motown"}},
	{Reggae, []string{"reggae", "dancehall"}},
	{Metal, []string{"metal"}},
	{Punk, []string{"punk"}},
	{WorldMusic, []string{"world", "afro"}},
	{Indie, []string{"indie"}},
	{Alternative, []string{"alternative"}},
	{Disco, []string{"disco"}},
	{Dance, []string{"dance"}},
	{Girl, []string{"girl"}},
	{Mellow, []string{"mellow"}},
	{Band, []string{"band"}},
	{Classical, []string{"classical", "orchestra", "opera", "baroque"}},
	{Latin, []string{"latin", "salsa", "bachata", "cumbia"}},
}

// Buckets returns every bucket in priority order. Other is always last.
func Buckets() []Bucket {
	out := make([]Bucket, 0, len(taxonomy)+1)
	for _, r := range taxonomy {
		out = append(out, r.bucket)
	}
	return append(out, Other)
}

// Markers returns the substring markers for a bucket, or nil for Other and
// unknown buckets.
func Markers(b Bucket) []string {
	for _, r := range taxonomy {
		if r.bucket == b {
			out := make([]string, len(r.markers))
			copy(out, r.markers)
			return out
		}
	}
	return nil
}

// Classify maps a comma-separated genre string to a single bucket. Only the
// first token is considered. Empty or unrecognized input yields Other.
func Classify(raw string) Bucket {
	token := raw
	if i := strings.Index(token, ","); i >= 0 {
		token = token[:i]
	}
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Other
	}

	for _, r := range taxonomy {
		for _, m := range r.markers {
			if strings.Contains(token, m) {
				return r.bucket
			}
		}
	}
	return Other
}

// Rank is the position of b in the priority order; unknown buckets sort
// with Other.
func Rank(b Bucket) int {
	for i, r := range taxonomy {
		if r.bucket == b {
			return i
		}
	}
	return len(taxonomy)
}
