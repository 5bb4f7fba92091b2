package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultVenuePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"venue_arena.txt", "venue_default.txt", "venue_mcg.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("S [1] [2] [3]\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	paths := defaultVenuePaths(dir)
	if len(paths) != 3 {
		t.Fatalf("found %d templates, want 3", len(paths))
	}
	if got := filepath.Base(paths[0]); got != "venue_default.txt" {
		t.Errorf("first template = %s, want venue_default.txt", got)
	}
	rest := map[string]bool{}
	for _, p := range paths[1:] {
		rest[filepath.Base(p)] = true
	}
	if !rest["venue_arena.txt"] || !rest["venue_mcg.txt"] {
		t.Errorf("remaining templates = %v, want arena and mcg", rest)
	}
}

func TestDefaultVenuePathsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	paths := defaultVenuePaths(dir)
	want := []string{filepath.Join(dir, "venue_default.txt")}
	if len(paths) != 1 || paths[0] != want[0] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}
