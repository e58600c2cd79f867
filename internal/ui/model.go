package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/mazelab/go-labyrinth/internal/config"
	"github.com/mazelab/go-labyrinth/internal/game"
	"github.com/mazelab/go-labyrinth/internal/level"
	"github.com/mazelab/go-labyrinth/internal/save"
	"github.com/mazelab/go-labyrinth/internal/sound"
)

// bombPrice is the shop price of one bomb, in coins.
const bombPrice = 15

// tickMsg advances the countdown once per second while playing. The
// generation guards against stale ticks surviving a pause or a new session.
type tickMsg struct{ gen int }

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Model is the Bubbletea model driving the whole game: it owns the mode
// state machine and the active session. All mutation happens inside Update,
// one event at a time.
type Model struct {
	cfg    config.Config
	loader level.Loader
	store  *save.Store // nil when the save dir is unavailable
	sounds *sound.Player
	log    *logrus.Logger

	mode    game.Mode
	inShop  bool
	shopMsg string

	levels   []string
	levelErr string

	profile save.Profile
	stats   save.Stats

	session *game.Session
	reward  int
	tickGen int

	fatal    error
	quitting bool
}

// NewModel builds the model in the main menu, with the profile and stats
// loaded from the store when one is available.
func NewModel(cfg config.Config, loader level.Loader, store *save.Store, sounds *sound.Player, log *logrus.Logger) Model {
	m := Model{
		cfg:     cfg,
		loader:  loader,
		store:   store,
		sounds:  sounds,
		log:     log,
		mode:    game.ModeMainMenu,
		profile: save.Profile{Name: cfg.PlayerName},
	}

	if store != nil {
		var err error
		if m.profile, err = store.LoadProfile(m.profile); err != nil {
			log.WithError(err).Warn("could not load profile")
		}
		if m.stats, err = store.LoadStats(); err != nil {
			log.WithError(err).Warn("could not load stats")
		}
	}
	return m
}

// Fatal returns the engine invariant violation that stopped the game, if any.
func (m Model) Fatal() error { return m.fatal }

// Init performs no work; ticking starts when a level does.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles one input event or timer tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.mode != game.ModePlaying || msg.gen != m.tickGen {
			return m, nil
		}
		if m.session == nil {
			return m.fail("ticking with no session")
		}
		if m.session.TickClock() == game.TimerExpired {
			return m.handleLose()
		}
		return m, tickCmd(m.tickGen)
	}

	return m, nil
}

// View renders the screen for the current mode.
func (m Model) View() string {
	if m.fatal != nil {
		return errorStyle.Render("Fatal: "+m.fatal.Error()) + "\n"
	}
	if m.quitting {
		return "Bye!\n"
	}

	switch m.mode {
	case game.ModeMainMenu:
		return renderMainMenu(m.profile, m.stats, m.inShop, m.shopMsg)
	case game.ModeLevelSelect:
		return renderLevelSelect(m.levels, m.stats.BestByLevel, m.levelErr)
	case game.ModePlaying:
		if m.session == nil {
			return ""
		}
		return renderPlaying(m.session)
	case game.ModePaused:
		return renderPaused()
	case game.ModeWon:
		return renderWon(m.reward)
	case game.ModeLost:
		return renderLost()
	default:
		return ""
	}
}

// handleKey dispatches a key press by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case game.ModeMainMenu:
		return m.keyMainMenu(msg)
	case game.ModeLevelSelect:
		return m.keyLevelSelect(msg)
	case game.ModePlaying:
		return m.keyPlaying(msg)
	case game.ModePaused:
		return m.keyPaused(msg)
	case game.ModeWon, game.ModeLost:
		return m.keyFinished(msg)
	}
	return m, nil
}

func (m Model) keyMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inShop {
		switch msg.String() {
		case "1":
			if m.profile.Coins >= bombPrice {
				m.profile.Coins -= bombPrice
				m.profile.Bombs++
				m.shopMsg = ""
				m.persistProfile()
				m.sounds.Play(sound.CueClick)
			} else {
				m.shopMsg = "Not enough coins"
				m.sounds.Play(sound.CueWarn)
			}
		case "esc":
			m.inShop = false
			m.shopMsg = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "1":
		m.sounds.Play(sound.CueClick)
		return m.transition(game.EventPlay)
	case "2":
		m.sounds.Play(sound.CueClick)
		m.inShop = true
		return m, nil
	case "3", "q", "esc":
		next, cmd := m.transition(game.EventQuit)
		return next, cmd
	}
	return m, nil
}

func (m Model) keyLevelSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return m.transition(game.EventCancel)
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx >= len(m.levels) {
			m.sounds.Play(sound.CueWarn)
			return m, nil
		}
		return m.startLevel(m.levels[idx])
	}
	return m, nil
}

func (m Model) keyPlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m.fail("playing with no session")
	}

	switch msg.String() {
	case "up", "w":
		return m.applyMove(game.DirUp)
	case "down", "s":
		return m.applyMove(game.DirDown)
	case "left", "a":
		return m.applyMove(game.DirLeft)
	case "right", "d":
		return m.applyMove(game.DirRight)

	case "b":
		if m.session.UseBomb() == game.BombDetonated {
			m.sounds.Play(sound.CueBomb)
		} else {
			m.sounds.Play(sound.CueWarn)
		}
		return m, nil

	case "p":
		return m.transition(game.EventPause)

	case "esc":
		m.log.WithField("level", m.session.LevelID).Info("session abandoned")
		m.session = nil
		return m.transition(game.EventBackToMenu)
	}
	return m, nil
}

func (m Model) keyPaused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "p":
		next, _ := m.transition(game.EventResume)
		model := next.(Model)
		model.tickGen++
		return model, tickCmd(model.tickGen)
	case "2", "esc":
		m.session = nil
		return m.transition(game.EventBackToMenu)
	}
	return m, nil
}

func (m Model) keyFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "esc":
		return m.transition(game.EventBackToMenu)
	case "2":
		return m.transition(game.EventRetry)
	}
	return m, nil
}

// applyMove resolves one directional input against the rules.
func (m Model) applyMove(dir game.Direction) (tea.Model, tea.Cmd) {
	keysBefore := m.session.Player.Keys
	out := m.session.Move(dir)

	switch out.Result {
	case game.MovedAndCollected:
		m.sounds.Play(sound.CueCollect)
	case game.Moved:
		if m.session.Player.Keys < keysBefore {
			m.sounds.Play(sound.CueDoor)
		}
	case game.Won:
		return m.handleWin()
	}
	return m, nil
}

// startLevel loads, validates and enters a level. Load or validation
// failures keep the player in level select with an error indicator.
func (m Model) startLevel(id string) (tea.Model, tea.Cmd) {
	grid, err := m.loader.Load(id)
	if err != nil {
		m.levelErr = fmt.Sprintf("%s: %v", id, err)
		m.log.WithError(err).WithField("level", id).Warn("level load failed")
		m.sounds.Play(sound.CueWarn)
		return m, nil
	}
	maze, err := game.NewMaze(grid)
	if err != nil {
		m.levelErr = fmt.Sprintf("%s: %v", id, err)
		m.log.WithError(err).WithField("level", id).Warn("level rejected")
		m.sounds.Play(sound.CueWarn)
		return m, nil
	}

	m.levelErr = ""
	m.session = game.NewSession(id, maze, m.profile.Name, m.profile.Bombs, m.cfg.TimerMinutes, m.cfg.TimerSeconds)
	m.log.WithFields(logrus.Fields{
		"level":   id,
		"session": m.session.ID,
	}).Info("session started")

	next, _ := m.transition(game.EventSelectLevel)
	model := next.(Model)
	model.tickGen++
	return model, tickCmd(model.tickGen)
}

// handleWin pays out the reward, records the run and shows the victory
// screen. Bombs left over go back into the profile.
func (m Model) handleWin() (tea.Model, tea.Cmd) {
	min, sec := m.session.Timer.Remaining()
	m.reward = game.Reward(min, sec) + m.session.Player.Coins
	m.profile.Coins += m.reward
	m.profile.Bombs = m.session.Player.Bombs

	rec := save.Record{
		SessionID:     m.session.ID,
		LevelID:       m.session.LevelID,
		CoinsEarned:   m.reward,
		TimeRemaining: m.session.Timer.RemainingSeconds(),
		Explored:      m.session.Explored(),
		When:          time.Now(),
	}
	m.stats.RecordWin(rec)
	m.persistProfile()
	m.persistStats()

	m.log.WithFields(logrus.Fields{
		"level":  rec.LevelID,
		"reward": rec.CoinsEarned,
	}).Info("level complete")

	m.sounds.Play(sound.CueWin)
	m.session = nil
	return m.transition(game.EventWin)
}

// handleLose records the defeat and shows the defeat screen.
func (m Model) handleLose() (tea.Model, tea.Cmd) {
	m.stats.RecordDefeat()
	m.persistStats()
	m.log.WithField("level", m.session.LevelID).Info("time expired")

	m.sounds.Play(sound.CueLose)
	m.session = nil
	return m.transition(game.EventLose)
}

// transition applies a state machine event. The UI only emits events that
// are legal in the current mode, so a rejected event is an internal bug and
// stops the game.
func (m Model) transition(ev game.Event) (tea.Model, tea.Cmd) {
	next, ok := game.Transition(m.mode, ev)
	if !ok {
		return m.fail(fmt.Sprintf("event %d illegal in mode %s", ev, m.mode))
	}
	m.mode = next

	switch next {
	case game.ModeLevelSelect:
		m.refreshLevels()
	case game.ModeExit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// fail records an engine invariant violation and stops the program.
func (m Model) fail(detail string) (tea.Model, tea.Cmd) {
	m.fatal = fmt.Errorf("%w: %s", game.ErrEngineInvariant, detail)
	m.log.WithError(m.fatal).Error("stopping")
	return m, tea.Quit
}

func (m *Model) refreshLevels() {
	ids, err := m.loader.List()
	if err != nil {
		m.levelErr = err.Error()
		m.log.WithError(err).Warn("could not list levels")
		return
	}
	m.levels = ids
}

func (m *Model) persistProfile() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveProfile(m.profile); err != nil {
		m.log.WithError(err).Warn("could not save profile")
	}
}

func (m *Model) persistStats() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveStats(m.stats); err != nil {
		m.log.WithError(err).Warn("could not save stats")
	}
}
