package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names a text column that option lists can be built from.
type Field string

const (
	FieldTrack       Field = "track"
	FieldArtist      Field = "artist"
	FieldAlbum       Field = "album"
	FieldGenre       Field = "genre"
	FieldExplicit    Field = "explicit"
	FieldReleaseDate Field = "release-date"
)

// ParseField accepts a field name or its column header.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "track", "track name":
		return FieldTrack, nil
	case "artist", "artists", "artist name", "artist name(s)":
		return FieldArtist, nil
	case "album", "album name":
		return FieldAlbum, nil
	case "genre", "genres", "artist genres":
		return FieldGenre, nil
	case "explicit":
		return FieldExplicit, nil
	case "release-date", "album release date":
		return FieldReleaseDate, nil
	}
	return "", fmt.Errorf("unknown field: %q", name)
}

func (f Field) value(t Track) string {
	switch f {
	case FieldTrack:
		return t.TrackName
	case FieldArtist:
		return t.ArtistNames
	case FieldAlbum:
		return t.AlbumName
	case FieldGenre:
		return t.GenreRaw
	case FieldExplicit:
		return strconv.FormatBool(t.Explicit)
	case FieldReleaseDate:
		return t.ReleaseDate.String()
	}
	return ""
}

// DistinctValues returns the distinct values of field in first-seen order.
// With split, multi-valued text such as "a,b" contributes "a" and "b"
// separately. Values are trimmed and empty values are skipped.
func DistinctValues(tracks []Track, field Field, split bool) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	for _, t := range tracks {
		v := field.value(t)
		if !split {
			add(v)
			continue
		}
		for _, part := range strings.Split(v, ",") {
			add(part)
		}
	}
	return out
}
