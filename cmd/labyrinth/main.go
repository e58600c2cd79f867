package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/mazelab/go-labyrinth/internal/config"
	"github.com/mazelab/go-labyrinth/internal/game"
	"github.com/mazelab/go-labyrinth/internal/level"
	"github.com/mazelab/go-labyrinth/internal/save"
	"github.com/mazelab/go-labyrinth/internal/sound"
	"github.com/mazelab/go-labyrinth/internal/ui"
)

func main() {
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the built-in set")
	mapDump := flag.String("map", "", "Print the full map of a level (e.g. LVL1) and exit")
	flag.Parse()

	cfg := config.Load()
	if *levelsDir != "" {
		cfg.LevelsDir = *levelsDir
	}

	var loader level.Loader = level.Builtin()
	if cfg.LevelsDir != "" {
		loader = level.NewDirLoader(cfg.LevelsDir)
	}

	if *mapDump != "" {
		if err := dumpMap(loader, *mapDump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	store, saveDir := openStore()
	log := newLogger(cfg, saveDir)
	sounds := sound.NewPlayer(os.Stderr, cfg.Sound)

	model := ui.NewModel(cfg, loader, store, sounds, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(ui.Model); ok && m.Fatal() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.Fatal())
		os.Exit(1)
	}
}

// dumpMap prints the plain full-map render, the debug counterpart of the
// in-game viewport.
func dumpMap(loader level.Loader, id string) error {
	grid, err := loader.Load(id)
	if err != nil {
		return err
	}
	m, err := game.NewMaze(grid)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(m.RenderPlain(m.Start()), "\n"))
	return nil
}

// openStore resolves the save directory. The game plays fine without one.
func openStore() (*save.Store, string) {
	dir, err := save.DefaultDir()
	if err != nil {
		return nil, ""
	}
	store, err := save.NewStore(dir)
	if err != nil {
		return nil, ""
	}
	return store, dir
}

// newLogger writes logs to a file; a TUI owns the terminal, so nothing may
// log to stdout or stderr while the program runs.
func newLogger(cfg config.Config, saveDir string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if saveDir == "" {
		log.SetOutput(nullWriter{})
		return log
	}
	f, err := os.OpenFile(filepath.Join(saveDir, "labyrinth.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(nullWriter{})
		return log
	}
	log.SetOutput(f)
	return log
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
