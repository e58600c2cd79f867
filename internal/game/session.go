package game

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Session is one in-progress attempt at a level: maze, player and timer are
// constructed fresh together and share no state with any previous attempt.
// All mutation happens inside the single UI loop; the session itself is not
// safe for concurrent use and does not need to be.
type Session struct {
	ID      string
	LevelID string
	Maze    *Maze
	Player  Player
	Timer   *Timer

	visited mapset.Set[Position]
}

// NewSession builds a session for the given maze. The player spawns on the
// PlayerStart cell carrying whatever bombs the profile brings along.
func NewSession(levelID string, m *Maze, playerName string, bombs int, minutes, seconds int) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		LevelID: levelID,
		Maze:    m,
		Player: Player{
			Name:  playerName,
			Pos:   m.Start(),
			Bombs: bombs,
		},
		Timer:   NewTimer(minutes, seconds),
		visited: mapset.New[Position](),
	}
	s.visited.Put(s.Player.Pos)
	return s
}

// Move resolves one directional input and records the visited cell.
func (s *Session) Move(dir Direction) MoveOutcome {
	out := ResolveMove(s.Maze, &s.Player, dir)
	if out.Result != Blocked {
		s.visited.Put(s.Player.Pos)
	}
	return out
}

// UseBomb resolves a bomb-use input.
func (s *Session) UseBomb() BombOutcome {
	return UseBomb(s.Maze, &s.Player)
}

// TickClock advances the countdown by one second.
func (s *Session) TickClock() TimerStatus {
	return s.Timer.Tick()
}

// Explored returns how many distinct cells the player has stood on.
func (s *Session) Explored() int {
	return s.visited.Size()
}

// Reward computes the coin reward for finishing with the given time left.
// More remaining time pays more.
func Reward(minutes, seconds int) int {
	return minutes*10 + seconds/5
}
