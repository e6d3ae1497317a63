package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Board cell styles, one per hit status.
var (
	styleHit      = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	styleContains = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	styleMiss     = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("7"))
	styleNone     = lipgloss.NewStyle()
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleHint     = lipgloss.NewStyle().Faint(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWon      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleLost     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// cellStyle maps a hit status to its board style.
func cellStyle(hit HitInfo) lipgloss.Style {
	switch hit {
	case HitStatusHit:
		return styleHit
	case HitStatusContains:
		return styleContains
	case HitStatusMiss:
		return styleMiss
	default:
		return styleNone
	}
}

// renderBoard draws the whole screen for the current session state: title
// and hint, one framed row per try, the last commit error if any, and the
// end banner once the session is over. It only reads from the engine.
func renderBoard(session *Session, hint string, elapsed time.Duration) string {
	game := session.Game()
	width := game.WordLength()
	separator := strings.Repeat("-", width*2+1)

	var b strings.Builder
	b.WriteString(styleTitle.Render("vorteto") + "\n")
	if hint != "" {
		b.WriteString(styleHint.Render("Hint: "+hint) + "\n")
	}
	b.WriteString("\n")

	for row := 0; row < game.MaxTries(); row++ {
		b.WriteString(separator + "\n")
		b.WriteString(renderRow(game, row) + "\n")
	}
	b.WriteString(separator + "\n")

	if err := game.LastError(); err != nil {
		b.WriteString(styleError.Render(capitalize(err.Error())) + "\n")
	}

	switch session.State() {
	case StateWon:
		tries := len(game.Guesses())
		b.WriteString(styleWon.Render("You won!") + "\n")
		b.WriteString(fmt.Sprintf("Guessed in %d %s, %s.\n", tries, tryNoun(tries), formatPlayTime(elapsed)))
	case StateLost:
		b.WriteString(styleLost.Render("You lost! The word was: "+game.Solution()) + "\n")
	}
	return b.String()
}

// renderRow draws one board row: a committed guess with its hit coloring,
// the in-progress input padded with underscores, or an empty row.
func renderRow(game *Game, row int) string {
	width := game.WordLength()
	guesses := game.Guesses()

	letters := make([]rune, 0, width)
	hits := make([]HitInfo, 0, width)
	switch {
	case row < len(guesses):
		letters = []rune(guesses[row])
		hits = game.Hits(row)
	case row == len(guesses):
		letters = []rune(game.Input())
		fallthrough
	default:
		for len(letters) < width {
			letters = append(letters, '_')
		}
		for len(hits) < width {
			hits = append(hits, HitStatusNone)
		}
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteString("|")
		b.WriteString(cellStyle(hits[i]).Render(string(letters[i])))
	}
	b.WriteString("|")
	return b.String()
}

// capitalize upper-cases the first letter of a message for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// tryNoun returns the singular or plural of "try".
func tryNoun(n int) string {
	if n == 1 {
		return "try"
	}
	return "tries"
}
