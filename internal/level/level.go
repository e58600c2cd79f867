// Package level loads authored maze grids from text files. A level file is
// a character grid using the fixed symbol table: '#' wall, 'D' door,
// 'K' key, 'C' coin, 'B' bomb, 'E' exit, 'P' player start, '.' or space
// empty. Rows shorter than the widest row are padded with empty cells.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound indicates no level file exists for the requested id.
	ErrNotFound = errors.New("level not found")

	// ErrUnreadable indicates a level file exists but could not be read.
	ErrUnreadable = errors.New("level unreadable")
)

// Loader yields character grids for named levels.
type Loader interface {
	// Load returns the grid for a level id such as "LVL1".
	Load(id string) ([][]rune, error)
	// List returns the available level ids, sorted numerically.
	List() ([]string, error)
}

// FSLoader reads levels from any fs.FS, including the embedded built-in set.
type FSLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSLoader creates a loader rooted at dir inside fsys.
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	return &FSLoader{fsys: fsys, dir: dir}
}

// Load reads and parses <dir>/<id>.txt.
func (l *FSLoader) Load(id string) ([][]rune, error) {
	f, err := l.fsys.Open(l.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, id, err)
	}
	defer f.Close()
	return parseGrid(f, id)
}

// List enumerates the "LVL*.txt" files under the loader's directory.
func (l *FSLoader) List() ([]string, error) {
	entries, err := fs.Glob(l.fsys, l.path("LVL*"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return sortedIDs(entries), nil
}

func (l *FSLoader) path(id string) string {
	name := id + ".txt"
	if l.dir == "" {
		return name
	}
	return l.dir + "/" + name
}

// DirLoader reads levels from a directory on disk, for user-authored sets.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a loader for level files under dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir}
}

// Load reads and parses <dir>/<id>.txt.
func (l *DirLoader) Load(id string) ([][]rune, error) {
	f, err := os.Open(filepath.Join(l.dir, id+".txt"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, id, err)
	}
	defer f.Close()
	return parseGrid(f, id)
}

// List enumerates the "LVL*.txt" files in the directory.
func (l *DirLoader) List() ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(l.dir, "LVL*.txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return sortedIDs(entries), nil
}

// parseGrid reads a character grid, strips a UTF-8 BOM if present, drops
// blank trailing lines and pads short rows to the widest row.
func parseGrid(r io.Reader, id string) ([][]rune, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, id, err)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrUnreadable, id)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, '.')
		}
		rows[i] = row
	}
	return rows, nil
}

// sortedIDs strips paths and extensions and sorts level ids by their
// trailing number, so LVL10 follows LVL9.
func sortedIDs(paths []string) []string {
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		ids = append(ids, strings.TrimSuffix(filepath.Base(p), ".txt"))
	}
	sort.Slice(ids, func(i, j int) bool {
		return levelNumber(ids[i]) < levelNumber(ids[j])
	})
	return ids
}

func levelNumber(id string) int {
	digits := strings.TrimFunc(id, func(r rune) bool {
		return r < '0' || r > '9'
	})
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
