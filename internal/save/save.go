// Package save persists the player profile and progress stats as JSON files
// under the user's config directory. Nothing in here is fatal for the game:
// callers log and play on when the disk misbehaves.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	profileFile = "profile.json"
	statsFile   = "stats.json"
)

// Profile is the player's persistent identity and wallet.
type Profile struct {
	Name  string `json:"name"`
	Coins int    `json:"coins"`
	Bombs int    `json:"bombs"` // Purchased, not yet used
}

// Record describes one finished winning run, as reported by the engine.
type Record struct {
	SessionID     string    `json:"session_id"`
	LevelID       string    `json:"level_id"`
	CoinsEarned   int       `json:"coins_earned"`
	TimeRemaining int       `json:"time_remaining"` // Seconds left at the exit
	Explored      int       `json:"explored"`       // Distinct cells visited
	When          time.Time `json:"when"`
}

// Stats aggregates progress across runs.
type Stats struct {
	TotalWins    int            `json:"total_wins"`
	TotalDefeats int            `json:"total_defeats"`
	BestByLevel  map[string]int `json:"best_by_level"` // Best coin haul per level id
	MostExplored int            `json:"most_explored"`
}

// RecordWin folds a winning run into the stats.
func (s *Stats) RecordWin(r Record) {
	s.TotalWins++
	if s.BestByLevel == nil {
		s.BestByLevel = make(map[string]int)
	}
	if best, ok := s.BestByLevel[r.LevelID]; !ok || r.CoinsEarned > best {
		s.BestByLevel[r.LevelID] = r.CoinsEarned
	}
	if r.Explored > s.MostExplored {
		s.MostExplored = r.Explored
	}
}

// RecordDefeat folds a lost run into the stats.
func (s *Stats) RecordDefeat() {
	s.TotalDefeats++
}

// Store reads and writes the save files in one directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the per-user save location.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "labyrinth"), nil
}

// LoadProfile reads the saved profile. A missing file returns the given
// default profile rather than an error.
func (s *Store) LoadProfile(fallback Profile) (Profile, error) {
	var p Profile
	if err := s.readJSON(profileFile, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fallback, nil
		}
		return fallback, err
	}
	if p.Name == "" {
		p.Name = fallback.Name
	}
	return p, nil
}

// SaveProfile writes the profile.
func (s *Store) SaveProfile(p Profile) error {
	return s.writeJSON(profileFile, p)
}

// LoadStats reads the saved stats; a missing file yields zero stats.
func (s *Store) LoadStats() (Stats, error) {
	var st Stats
	if err := s.readJSON(statsFile, &st); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, nil
		}
		return Stats{}, err
	}
	return st, nil
}

// SaveStats writes the stats.
func (s *Store) SaveStats(st Stats) error {
	return s.writeJSON(statsFile, st)
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
