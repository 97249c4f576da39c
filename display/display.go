// Package display renders game progress for the terminal.
package display

import (
	"fmt"
	"strings"

	"divgame/engine"
	"divgame/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorComputer = lipgloss.Color("10") // Bright green
	ColorBanner   = lipgloss.Color("11")
)

var Styles = struct {
	Computer lipgloss.Style
	Banner   lipgloss.Style
	Bold     lipgloss.Style
}{
	Computer: lipgloss.NewStyle().Foreground(ColorComputer),
	Banner:   lipgloss.NewStyle().Bold(true).Foreground(ColorBanner),
	Bold:     lipgloss.NewStyle().Bold(true),
}

func Score(s game.State) string {
	return fmt.Sprintf("SCORE: H %d, C %d", s.HumanPoints(), s.ComputerPoints())
}

// Status shows the current number and score before a move.
func Status(s game.State) string {
	return fmt.Sprintf("Current number: %d\n%s\n", s.Number(), Score(s))
}

// ComputerMove shows the state after a computer move, in the computer's colour.
func ComputerMove(u engine.Update) string {
	lines := []string{
		fmt.Sprintf("Current number: %d", u.State.Number()),
		Score(u.State),
		fmt.Sprintf("Computer divided by %d.", u.Move),
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(Styles.Computer.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func winnerLine(winner string) string {
	switch winner {
	case game.HumanWins:
		return "Winner: Human"
	case game.ComputerWins:
		return "Winner: Computer"
	default:
		return "Draw"
	}
}

func GameOver(o engine.Outcome) string {
	return fmt.Sprintf("%s\nFinal Score: H %d, C %d\n%s\n",
		Styles.Banner.Render("---GAME OVER---"),
		o.Final.HumanPoints(), o.Final.ComputerPoints(),
		Styles.Bold.Render(winnerLine(o.Winner)))
}
