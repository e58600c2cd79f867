package game

import (
	"fmt"
	"strings"
)

// Glyphs used by the text renderers.
const (
	playerGlyph = '●'
	voidGlyph   = ' '
)

// symbolFromRune maps a level-file character to its Symbol.
// Unknown characters are treated as Empty.
func symbolFromRune(ch rune) Symbol {
	switch ch {
	case '#':
		return Wall
	case 'D':
		return Door
	case 'K':
		return Key
	case 'C':
		return Coin
	case 'B':
		return BombPickup
	case 'E', 'X':
		return ExitDoor
	case 'P':
		return PlayerStart
	default:
		return Empty
	}
}

// Maze is a rectangular grid of symbols, owned by one level session.
type Maze struct {
	cells  [][]Symbol
	width  int
	height int
	start  Position
}

// NewMaze builds a maze from a rectangular character grid and extracts the
// player start coordinate.
//
// Validation rules:
//   - exactly one PlayerStart cell
//   - at least one Exit cell
//
// Violations return ErrInvalidLevel.
func NewMaze(grid [][]rune) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidLevel)
	}

	height := len(grid)
	width := len(grid[0])

	cells := make([][]Symbol, height)
	for y := 0; y < height; y++ {
		if len(grid[y]) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLevel, y, len(grid[y]), width)
		}
		cells[y] = make([]Symbol, width)
		for x, ch := range grid[y] {
			cells[y][x] = symbolFromRune(ch)
		}
	}

	m := &Maze{cells: cells, width: width, height: height}

	starts := m.FindAll(PlayerStart)
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: found %d player start cells, need exactly 1", ErrInvalidLevel, len(starts))
	}
	if len(m.FindAll(ExitDoor)) == 0 {
		return nil, fmt.Errorf("%w: no exit cell", ErrInvalidLevel)
	}

	m.start = starts[0]
	return m, nil
}

// Width returns the grid width in cells.
func (m *Maze) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Maze) Height() int { return m.height }

// Start returns the PlayerStart coordinate found at construction.
func (m *Maze) Start() Position { return m.start }

// InBounds reports whether (x, y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// SymbolAt returns the symbol at (x, y), or ErrOutOfBounds.
func (m *Maze) SymbolAt(x, y int) (Symbol, error) {
	if !m.InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cells[y][x], nil
}

// SetSymbol mutates a single cell, or returns ErrOutOfBounds.
// Used when a consumed pickup or an opened door becomes Empty.
func (m *Maze) SetSymbol(x, y int, s Symbol) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}
	m.cells[y][x] = s
	return nil
}

// FindAll returns the positions of every cell holding s, scanned row-major
// top-to-bottom, left-to-right. Empty slice if none.
func (m *Maze) FindAll(s Symbol) []Position {
	var found []Position
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == s {
				found = append(found, Position{X: x, Y: y})
			}
		}
	}
	return found
}

// RenderPlain renders the full grid, one string per row, with the player
// glyph overlaid at the player's cell. Rendering never mutates the maze.
func (m *Maze) RenderPlain(player Position) []string {
	lines := make([]string, 0, m.height)
	for y := 0; y < m.height; y++ {
		var b strings.Builder
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.renderCell(x, y, player))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// ViewportConfig configures the windowed render mode.
type ViewportConfig struct {
	Radius int    // Window half-size; the window is (2*Radius+1) cells square. Default 4.
	Prompt string // Optional line appended after the window. Empty means none.
}

// DefaultViewport returns the viewport configuration used during play.
func DefaultViewport() ViewportConfig {
	return ViewportConfig{Radius: 4}
}

// RenderViewport renders a (2r+1)x(2r+1) window centered on center, clipped
// at the grid edges. Cells outside the grid render as the void glyph rather
// than wrapping. The prompt line, when set, is appended last.
func (m *Maze) RenderViewport(player, center Position, cfg ViewportConfig) []string {
	r := cfg.Radius
	if r <= 0 {
		r = DefaultViewport().Radius
	}

	side := 2*r + 1
	lines := make([]string, 0, side+1)
	for y := center.Y - r; y <= center.Y+r; y++ {
		var b strings.Builder
		for x := center.X - r; x <= center.X+r; x++ {
			if !m.InBounds(x, y) {
				b.WriteRune(voidGlyph)
				continue
			}
			b.WriteRune(m.renderCell(x, y, player))
		}
		lines = append(lines, b.String())
	}

	if cfg.Prompt != "" {
		lines = append(lines, cfg.Prompt)
	}
	return lines
}

// renderCell picks the glyph for one in-bounds cell, player overlay first.
func (m *Maze) renderCell(x, y int, player Position) rune {
	if x == player.X && y == player.Y {
		return playerGlyph
	}
	return m.cells[y][x].Rune()
}
