package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea front end for one session. It translates key
// messages into session events and reads engine state back out for
// rendering; it holds no game state of its own.
type model struct {
	session *Session
	hint    string
	started time.Time
}

// newModel creates the TUI model for a session.
func newModel(session *Session, hint string) model {
	return model{
		session: session,
		hint:    hint,
		started: time.Now(),
	}
}

// Init implements tea.Model. The game has no background work to start.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Each key message maps to exactly one kind of
// input event; the program quits once the session reaches a terminal state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.session.Apply(InputEvent{Kind: EventAbort})
	case tea.KeyBackspace:
		m.session.Apply(InputEvent{Kind: EventBackspace})
	case tea.KeyEnter:
		m.session.Apply(InputEvent{Kind: EventConfirm})
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.session.Apply(InputEvent{Kind: EventChar, Char: r})
		}
	}

	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	return renderBoard(m.session, m.hint, time.Since(m.started))
}
