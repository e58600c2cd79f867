package game

import "testing"

func TestMoveBlockedByWall(t *testing.T) {
	m := mustMaze(t,
		"###",
		"#P#",
		"#E#",
		"###",
	)
	p := Player{Pos: m.Start()}

	for _, dir := range []Direction{DirUp, DirLeft, DirRight} {
		out := ResolveMove(m, &p, dir)
		if out.Result != Blocked {
			t.Errorf("move %v into wall: expected Blocked, got %v", dir, out.Result)
		}
		if p.Pos != m.Start() {
			t.Fatalf("blocked move changed position to (%d,%d)", p.Pos.X, p.Pos.Y)
		}
	}
}

func TestMoveBlockedByEdge(t *testing.T) {
	m := mustMaze(t, "PE")
	p := Player{Pos: m.Start()}

	out := ResolveMove(m, &p, DirUp)
	if out.Result != Blocked {
		t.Errorf("move off grid: expected Blocked, got %v", out.Result)
	}
	if p.Pos != m.Start() {
		t.Errorf("edge move changed position to (%d,%d)", p.Pos.X, p.Pos.Y)
	}
}

func TestDoorNeedsKey(t *testing.T) {
	m := mustMaze(t,
		"PDE",
	)
	p := Player{Pos: m.Start()}

	// No key: blocked, door stays.
	out := ResolveMove(m, &p, DirRight)
	if out.Result != Blocked {
		t.Errorf("door without key: expected Blocked, got %v", out.Result)
	}
	if sym, _ := m.SymbolAt(1, 0); sym != Door {
		t.Errorf("door should survive a blocked attempt, got %v", sym)
	}
	if p.Keys != 0 {
		t.Errorf("blocked door consumed a key: %d", p.Keys)
	}

	// With a key: move through, door opens for good.
	p.Keys = 1
	out = ResolveMove(m, &p, DirRight)
	if out.Result != Moved {
		t.Fatalf("door with key: expected Moved, got %v", out.Result)
	}
	if p.Keys != 0 {
		t.Errorf("expected key consumed, have %d", p.Keys)
	}
	if sym, _ := m.SymbolAt(1, 0); sym != Empty {
		t.Errorf("opened door should become Empty, got %v", sym)
	}

	// Stepping back and through again is a plain move, no key cost.
	ResolveMove(m, &p, DirLeft)
	out = ResolveMove(m, &p, DirRight)
	if out.Result != Moved {
		t.Errorf("re-entering opened door: expected Moved, got %v", out.Result)
	}
}

func TestCollectibles(t *testing.T) {
	cases := []struct {
		name string
		row  string
		item Item
		got  func(p *Player) int
	}{
		{"key", "PKE", ItemKey, func(p *Player) int { return p.Keys }},
		{"coin", "PCE", ItemCoin, func(p *Player) int { return p.Coins }},
		{"bomb", "PBE", ItemBomb, func(p *Player) int { return p.Bombs }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMaze(t, tc.row)
			p := Player{Pos: m.Start()}

			out := ResolveMove(m, &p, DirRight)
			if out.Result != MovedAndCollected {
				t.Fatalf("expected MovedAndCollected, got %v", out.Result)
			}
			if out.Collected != tc.item {
				t.Errorf("expected collected %v, got %v", tc.item, out.Collected)
			}
			if tc.got(&p) != 1 {
				t.Errorf("expected inventory count 1, got %d", tc.got(&p))
			}
			if sym, _ := m.SymbolAt(1, 0); sym != Empty {
				t.Errorf("consumed cell should be Empty, got %v", sym)
			}

			// The pickup is gone; walking the same path again collects nothing.
			ResolveMove(m, &p, DirLeft)
			out = ResolveMove(m, &p, DirRight)
			if out.Result != Moved {
				t.Errorf("second pass: expected plain Moved, got %v", out.Result)
			}
			if tc.got(&p) != 1 {
				t.Errorf("second pass changed inventory to %d", tc.got(&p))
			}
		})
	}
}

func TestWalkToExit(t *testing.T) {
	// 5x5 open grid, start top-left, exit bottom-right.
	m := mustMaze(t,
		"P....",
		".....",
		".....",
		".....",
		"....E",
	)
	p := Player{Pos: m.Start()}

	steps := []Direction{DirRight, DirRight, DirRight, DirRight, DirDown, DirDown, DirDown}
	for i, dir := range steps {
		out := ResolveMove(m, &p, dir)
		if out.Result != Moved {
			t.Fatalf("step %d: expected Moved, got %v", i, out.Result)
		}
	}

	out := ResolveMove(m, &p, DirDown)
	if out.Result != Won {
		t.Fatalf("final step onto exit: expected Won, got %v", out.Result)
	}
	if p.Pos != (Position{X: 4, Y: 4}) {
		t.Errorf("winning move should land on the exit, got (%d,%d)", p.Pos.X, p.Pos.Y)
	}
}

func TestUseBombWithoutBombs(t *testing.T) {
	m := mustMaze(t,
		"###",
		"#P#",
		"#E#",
		"###",
	)
	p := Player{Pos: m.Start()}

	if out := UseBomb(m, &p); out != NoBombsAvailable {
		t.Fatalf("expected NoBombsAvailable, got %v", out)
	}
	if sym, _ := m.SymbolAt(0, 1); sym != Wall {
		t.Errorf("bombless detonation mutated the maze")
	}
}

func TestUseBombClearsNeighbors(t *testing.T) {
	m := mustMaze(t,
		"###",
		"#P#",
		"###",
		"..E",
	)
	p := Player{Pos: Position{X: 1, Y: 1}, Bombs: 2}

	if out := UseBomb(m, &p); out != BombDetonated {
		t.Fatalf("expected BombDetonated, got %v", out)
	}
	if p.Bombs != 1 {
		t.Errorf("expected 1 bomb left, got %d", p.Bombs)
	}

	for _, pos := range []Position{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		if sym, _ := m.SymbolAt(pos.X, pos.Y); sym != Empty {
			t.Errorf("neighbor (%d,%d) should be cleared, got %v", pos.X, pos.Y, sym)
		}
	}
	// Diagonal walls are untouched.
	for _, pos := range []Position{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}} {
		if sym, _ := m.SymbolAt(pos.X, pos.Y); sym != Wall {
			t.Errorf("diagonal (%d,%d) should stay Wall, got %v", pos.X, pos.Y, sym)
		}
	}
	if p.Pos != (Position{X: 1, Y: 1}) {
		t.Errorf("detonation moved the player to (%d,%d)", p.Pos.X, p.Pos.Y)
	}
}

func TestUseBombAtEdge(t *testing.T) {
	// Player in the top-left corner: two neighbors are off-grid and must
	// simply be skipped.
	m := mustMaze(t,
		"P#",
		"#E",
	)
	p := Player{Pos: m.Start(), Bombs: 1}

	if out := UseBomb(m, &p); out != BombDetonated {
		t.Fatalf("expected BombDetonated, got %v", out)
	}
	if sym, _ := m.SymbolAt(1, 0); sym != Empty {
		t.Errorf("wall at (1,0) should be cleared, got %v", sym)
	}
	if sym, _ := m.SymbolAt(0, 1); sym != Empty {
		t.Errorf("wall at (0,1) should be cleared, got %v", sym)
	}
}

func TestUseBombSparesNonWalls(t *testing.T) {
	m := mustMaze(t,
		".C.",
		"DPK",
		".E.",
	)
	p := Player{Pos: Position{X: 1, Y: 1}, Bombs: 1}

	UseBomb(m, &p)

	if sym, _ := m.SymbolAt(1, 0); sym != Coin {
		t.Errorf("coin should survive detonation, got %v", sym)
	}
	if sym, _ := m.SymbolAt(0, 1); sym != Door {
		t.Errorf("door should survive detonation, got %v", sym)
	}
	if sym, _ := m.SymbolAt(2, 1); sym != Key {
		t.Errorf("key should survive detonation, got %v", sym)
	}
	if sym, _ := m.SymbolAt(1, 2); sym != ExitDoor {
		t.Errorf("exit should survive detonation, got %v", sym)
	}
}
