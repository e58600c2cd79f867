package game

// ResolveMove attempts to move the player one step in the given direction,
// applying the side effect of whatever occupies the target cell. The maze
// and player are mutated only on a successful move.
func ResolveMove(m *Maze, p *Player, dir Direction) MoveOutcome {
	dx, dy := dir.Delta()
	nx, ny := p.Pos.X+dx, p.Pos.Y+dy

	sym, err := m.SymbolAt(nx, ny)
	if err != nil {
		// Stepping off the grid edge is an ordinary blocked move.
		return MoveOutcome{Result: Blocked}
	}

	switch sym {
	case Wall:
		return MoveOutcome{Result: Blocked}

	case Door:
		if p.Keys == 0 {
			return MoveOutcome{Result: Blocked}
		}
		p.Keys--
		m.cells[ny][nx] = Empty
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: Moved}

	case Key:
		p.Keys++
		m.cells[ny][nx] = Empty
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: MovedAndCollected, Collected: ItemKey}

	case Coin:
		p.Coins++
		m.cells[ny][nx] = Empty
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: MovedAndCollected, Collected: ItemCoin}

	case BombPickup:
		p.Bombs++
		m.cells[ny][nx] = Empty
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: MovedAndCollected, Collected: ItemBomb}

	case ExitDoor:
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: Won}

	default: // Empty, PlayerStart
		p.Pos = Position{X: nx, Y: ny}
		return MoveOutcome{Result: Moved}
	}
}

// UseBomb spends one bomb to clear the four orthogonal Wall neighbors of the
// player. Neighbors outside the grid are skipped; the player does not move.
func UseBomb(m *Maze, p *Player) BombOutcome {
	if p.Bombs == 0 {
		return NoBombsAvailable
	}
	p.Bombs--

	offsets := []Position{
		{X: 0, Y: -1},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 1, Y: 0},
	}
	for _, d := range offsets {
		x, y := p.Pos.X+d.X, p.Pos.Y+d.Y
		if !m.InBounds(x, y) {
			continue
		}
		if m.cells[y][x] == Wall {
			m.cells[y][x] = Empty
		}
	}
	return BombDetonated
}
