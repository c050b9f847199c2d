package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEveryUpHasADown(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(ups) == 0 {
		t.Fatalf("expected embedded migrations")
	}

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		if _, err := fs.Stat(FS, down); err != nil {
			t.Fatalf("missing %s for %s: %v", down, up, err)
		}
	}
}

func TestSchemaCascadesFromArtists(t *testing.T) {
	raw, err := fs.ReadFile(FS, "000001_create_catalog.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	schema := string(raw)

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS artists",
		"CREATE TABLE IF NOT EXISTS album_musics",
		"ON DELETE CASCADE",
		"duration_ms",
	} {
		if !strings.Contains(schema, want) {
			t.Fatalf("expected schema to contain %q", want)
		}
	}
}
