// Package sound emits named audio cues. The implementation is deliberately
// thin: cues map to terminal bell sequences written to an injected writer,
// and a disabled player swallows everything. Whether anything is audible is
// the terminal's business.
package sound

import "io"

// Cue names the game events that have a sound.
type Cue string

const (
	CueClick   Cue = "click"
	CueCollect Cue = "collect"
	CueDoor    Cue = "door"
	CueBomb    Cue = "bomb"
	CueWin     Cue = "win"
	CueLose    Cue = "lose"
	CueWarn    Cue = "warn"
)

// Player turns cues into output. Enabled is decided at construction; there
// is no global toggle.
type Player struct {
	w       io.Writer
	enabled bool
}

// NewPlayer creates a player writing bell sequences to w.
func NewPlayer(w io.Writer, enabled bool) *Player {
	return &Player{w: w, enabled: enabled}
}

// Play emits the cue. Write failures are ignored; a lost beep is not worth
// interrupting the game for.
func (p *Player) Play(c Cue) {
	if !p.enabled || p.w == nil {
		return
	}
	_, _ = p.w.Write([]byte(bellFor(c)))
}

// bellFor picks the bell pattern per cue. Richer cues ring twice.
func bellFor(c Cue) string {
	switch c {
	case CueWin, CueLose:
		return "\a\a"
	default:
		return "\a"
	}
}
