// levelcheck validates level files without starting the game: it loads each
// level, runs the maze invariant checks and prints the full-map render.
// Useful when authoring new levels.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mazelab/go-labyrinth/internal/game"
	"github.com/mazelab/go-labyrinth/internal/level"
)

func main() {
	levelsDir := flag.String("levels", "", "Directory of level files (default: built-in set)")
	quiet := flag.Bool("quiet", false, "Only report problems, do not print maps")
	flag.Parse()

	var loader level.Loader = level.Builtin()
	if *levelsDir != "" {
		loader = level.NewDirLoader(*levelsDir)
	}

	ids := flag.Args()
	if len(ids) == 0 {
		var err error
		ids, err = loader.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "No levels found")
		os.Exit(1)
	}

	bad := 0
	for _, id := range ids {
		if err := check(loader, id, *quiet); err != nil {
			fmt.Fprintf(os.Stderr, "%s: FAIL: %v\n", id, err)
			bad++
			continue
		}
		fmt.Printf("%s: OK\n", id)
	}
	if bad > 0 {
		os.Exit(1)
	}
}

func check(loader level.Loader, id string, quiet bool) error {
	grid, err := loader.Load(id)
	if err != nil {
		return err
	}
	m, err := game.NewMaze(grid)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Println(strings.Join(m.RenderPlain(m.Start()), "\n"))
		fmt.Printf("%dx%d  keys=%d doors=%d coins=%d bombs=%d exits=%d\n",
			m.Width(), m.Height(),
			len(m.FindAll(game.Key)), len(m.FindAll(game.Door)),
			len(m.FindAll(game.Coin)), len(m.FindAll(game.BombPickup)),
			len(m.FindAll(game.ExitDoor)))
	}

	// A level whose doors outnumber its keys may still be winnable with
	// bombs, but it is worth flagging.
	if doors, keys := len(m.FindAll(game.Door)), len(m.FindAll(game.Key)); doors > keys {
		fmt.Printf("%s: warning: %d doors but only %d keys\n", id, doors, keys)
	}
	return nil
}
