package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mazelab/go-labyrinth/internal/game"
	"github.com/mazelab/go-labyrinth/internal/save"
)

// Color palette
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ccccdd"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	urgentClockStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff4444")).
				Bold(true).
				Blink(true)

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Bold(true)

	mazeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#aaaacc"))
)

// renderMainMenu draws the title screen, or the shop when it is open.
func renderMainMenu(profile save.Profile, stats save.Stats, inShop bool, shopMsg string) string {
	if inShop {
		return renderShop(profile, shopMsg)
	}

	var parts []string
	parts = append(parts, titleStyle.Render("◆ LABYRINTH"))
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render(fmt.Sprintf("Player: %s   Coins: %d   Bombs: %d", profile.Name, profile.Coins, profile.Bombs)))
	if stats.TotalWins+stats.TotalDefeats > 0 {
		parts = append(parts, hintStyle.Render(fmt.Sprintf("Wins: %d   Defeats: %d", stats.TotalWins, stats.TotalDefeats)))
	}
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render("1) Play"))
	parts = append(parts, menuItemStyle.Render("2) Shop"))
	parts = append(parts, menuItemStyle.Render("3) Quit"))
	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("Press 1-3"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}

// renderShop draws the in-menu shop.
func renderShop(profile save.Profile, msg string) string {
	var parts []string
	parts = append(parts, titleStyle.Render("◆ SHOP"))
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render(fmt.Sprintf("Coins: %d   Bombs: %d", profile.Coins, profile.Bombs)))
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render(fmt.Sprintf("1) Bomb - %d coins", bombPrice)))
	if msg != "" {
		parts = append(parts, "")
		parts = append(parts, errorStyle.Render(msg))
	}
	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("1 buy   Esc back"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}

// renderLevelSelect lists the available levels with best results.
func renderLevelSelect(levels []string, best map[string]int, errMsg string) string {
	var parts []string
	parts = append(parts, titleStyle.Render("◆ SELECT LEVEL"))
	parts = append(parts, "")

	if len(levels) == 0 {
		parts = append(parts, errorStyle.Render("No levels found"))
	}
	for i, id := range levels {
		line := fmt.Sprintf("%d) %s", i+1, id)
		if b, ok := best[id]; ok {
			line += fmt.Sprintf("  best: %d", b)
		}
		parts = append(parts, menuItemStyle.Render(line))
	}

	if errMsg != "" {
		parts = append(parts, "")
		parts = append(parts, errorStyle.Render(errMsg))
	}
	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("1-9 choose   Esc back"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}

// urgentThreshold is the remaining-seconds mark where the clock turns red.
const urgentThreshold = 15

// renderPlaying draws the viewport, the HUD line above it and the controls
// hint below.
func renderPlaying(s *game.Session) string {
	min, sec := s.Timer.Remaining()
	clock := fmt.Sprintf("%02d:%02d", min, sec)
	if s.Timer.RemainingSeconds() <= urgentThreshold {
		clock = urgentClockStyle.Render(clock)
	} else {
		clock = clockStyle.Render(clock)
	}

	hud := fmt.Sprintf("%s  ⏱ %s  💰 %d  🔑 %d  💣 %d",
		s.Player.Name, clock, s.Player.Coins, s.Player.Keys, s.Player.Bombs)

	window := s.Maze.RenderViewport(s.Player.Pos, s.Player.Pos, game.DefaultViewport())
	body := hud + "\n\n" + mazeStyle.Render(strings.Join(window, "\n"))

	hint := hintStyle.Render("WASD/Arrows move   B bomb   P pause   Esc menu")
	return frameStyle.Render(body) + "\n" + hint + "\n"
}

// renderPaused draws the pause overlay.
func renderPaused() string {
	var parts []string
	parts = append(parts, titleStyle.Render("◆ PAUSED"))
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render("1) Continue"))
	parts = append(parts, menuItemStyle.Render("2) To menu"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}

// renderWon draws the victory screen with the coin reward.
func renderWon(reward int) string {
	var parts []string
	parts = append(parts, wonStyle.Render("★ LEVEL COMPLETE"))
	parts = append(parts, "")
	parts = append(parts, menuItemStyle.Render(fmt.Sprintf("+%d coins", reward)))
	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("1 menu   2 levels"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}

// renderLost draws the defeat screen.
func renderLost() string {
	var parts []string
	parts = append(parts, lostStyle.Render("✖ TIME IS UP"))
	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("1 menu   2 levels"))

	return frameStyle.Render(strings.Join(parts, "\n")) + "\n"
}
