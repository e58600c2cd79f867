package game

import "errors"

// Symbol represents the semantic content of a single maze cell.
type Symbol int

const (
	Empty Symbol = iota
	Wall
	Door // Opens when the player spends a key
	Key
	Coin
	BombPickup // A bomb lying on the floor, collectible
	ExitDoor
	PlayerStart
)

// Rune returns the level-file character for a symbol.
func (s Symbol) Rune() rune {
	switch s {
	case Wall:
		return '#'
	case Door:
		return 'D'
	case Key:
		return 'K'
	case Coin:
		return 'C'
	case BombPickup:
		return 'B'
	case ExitDoor:
		return 'E'
	case PlayerStart:
		return 'P'
	default:
		return '.'
	}
}

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Position represents a coordinate on the maze grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Player holds the player's position and inventory for one level attempt.
type Player struct {
	Name  string   `json:"name"`
	Pos   Position `json:"pos"`
	Keys  int      `json:"keys"`
	Coins int      `json:"coins"`
	Bombs int      `json:"bombs"`
}

// Item identifies what a move collected, when it collected anything.
type Item int

const (
	ItemNone Item = iota
	ItemKey
	ItemCoin
	ItemBomb
)

// MoveOutcome is the result of resolving one proposed move against the
// current maze and inventory.
type MoveOutcome struct {
	Result    MoveResult
	Collected Item // Set only when Result is MovedAndCollected
}

// MoveResult classifies a resolved move.
type MoveResult int

const (
	Blocked MoveResult = iota
	Moved
	MovedAndCollected
	Won
)

// BombOutcome is the result of a bomb-use action.
type BombOutcome int

const (
	NoBombsAvailable BombOutcome = iota
	BombDetonated
)

// TimerStatus is returned by Timer.Tick.
type TimerStatus int

const (
	TimerRunning TimerStatus = iota
	TimerExpired
)

var (
	// ErrInvalidLevel indicates a level grid that violates the maze
	// invariants (exactly one PlayerStart, at least one Exit).
	ErrInvalidLevel = errors.New("invalid level")

	// ErrOutOfBounds indicates a cell query outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrEngineInvariant indicates an internal state that should be
	// impossible given a valid level. Fatal; not player-recoverable.
	ErrEngineInvariant = errors.New("engine invariant violation")
)
