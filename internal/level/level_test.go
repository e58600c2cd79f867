package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mazelab/go-labyrinth/internal/game"
)

func TestFSLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/LVL1.txt": {Data: []byte("###\n#P#\n#E#\n###\n")},
	}
	l := NewFSLoader(fsys, "levels")

	grid, err := l.Load("LVL1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(grid))
	}
	if string(grid[1]) != "#P#" {
		t.Errorf("row 1: expected #P#, got %q", string(grid[1]))
	}
}

func TestFSLoaderNotFound(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{}, "levels")
	if _, err := l.Load("LVL9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParsePadsShortRows(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/LVL1.txt": {Data: []byte("####\n#PE\n####\n")},
	}
	l := NewFSLoader(fsys, "levels")

	grid, err := l.Load("LVL1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, row := range grid {
		if len(row) != 4 {
			t.Errorf("row %d: expected padded width 4, got %d", i, len(row))
		}
	}
	if grid[1][3] != '.' {
		t.Errorf("padding should be empty cells, got %q", grid[1][3])
	}
}

func TestParseStripsBOM(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/LVL1.txt": {Data: []byte("\uFEFFPE\n")},
	}
	l := NewFSLoader(fsys, "levels")

	grid, err := l.Load("LVL1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(grid[0]) != "PE" {
		t.Errorf("BOM should be stripped, got %q", string(grid[0]))
	}
}

func TestParseEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/LVL1.txt": {Data: []byte("\n\n")},
	}
	l := NewFSLoader(fsys, "levels")
	if _, err := l.Load("LVL1"); !errors.Is(err, ErrUnreadable) {
		t.Errorf("expected ErrUnreadable for empty file, got %v", err)
	}
}

func TestListNumericOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/LVL10.txt": {Data: []byte("PE\n")},
		"levels/LVL2.txt":  {Data: []byte("PE\n")},
		"levels/LVL1.txt":  {Data: []byte("PE\n")},
	}
	l := NewFSLoader(fsys, "levels")

	ids, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"LVL1", "LVL2", "LVL10"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "LVL1.txt"), []byte("P.E\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewDirLoader(dir)

	grid, err := l.Load("LVL1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(grid[0]) != "P.E" {
		t.Errorf("expected P.E, got %q", string(grid[0]))
	}

	if _, err := l.Load("LVL2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	ids, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != "LVL1" {
		t.Errorf("expected [LVL1], got %v", ids)
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	l := Builtin()
	ids, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) == 0 {
		t.Fatal("expected at least one built-in level")
	}

	for _, id := range ids {
		grid, err := l.Load(id)
		if err != nil {
			t.Errorf("%s: load failed: %v", id, err)
			continue
		}
		if _, err := game.NewMaze(grid); err != nil {
			t.Errorf("%s: invalid maze: %v", id, err)
		}
	}
}
