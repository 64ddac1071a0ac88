package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

const testHeader = ",Track Name,Artist Name(s),Album Name,Album Release Date,Track Duration (s),Explicit,Artist Genres,Popularity"

var testRows = []string{
	`0,Twist,The Rockers,First,1962-03-01,200,false,Rock,0`,
	`1,Marathon,MC Long,Endless,1962,9000,true,rap,50`,
	`2,Recent,Somebody,Now,2020-05-05,180,false,,0`,
	`3,Duet,"Simon,Garfunkel",Bridge,1970.0,260,false,"folk rock,folk",70`,
}

func createTestData(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.csv")
	content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func testConfig(t *testing.T) QueryConfig {
	return QueryConfig{
		DataPath: createTestData(t, testRows...),
		Format:   formatTable,
		Options:  analysis.DefaultOptions(),
	}
}
