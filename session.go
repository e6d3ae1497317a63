package main

// Session drives a single play-through of a Game: it feeds input events to
// the engine and decides when the session terminates. All processing is
// strictly synchronous; one event is fully applied before the next one is
// looked at.
type Session struct {
	game  *Game
	state SessionState
}

// NewSession creates a Session in the playing state for the given game.
func NewSession(game *Game) *Session {
	return &Session{game: game, state: StatePlaying}
}

// Apply processes one input event and returns the resulting state.
// Won, lost and aborted are terminal: further events are ignored.
//
// Character and backspace events only edit the input buffer. A confirm
// event commits the buffer; a failed commit consumes no attempt and leaves
// the session playing. An abort event terminates the session from any
// playing position.
func (s *Session) Apply(ev InputEvent) SessionState {
	if s.state != StatePlaying {
		return s.state
	}

	switch ev.Kind {
	case EventAbort:
		s.state = StateAborted
	case EventChar:
		s.game.AddChar(ev.Char)
	case EventBackspace:
		s.game.Backspace()
	case EventConfirm:
		won, err := s.game.Commit()
		switch {
		case err != nil:
			// Recoverable commit failures are reported through the
			// engine's last error; the session keeps playing.
		case won:
			s.state = StateWon
		case s.game.Exhausted():
			s.state = StateLost
		}
	}
	return s.state
}

// Drive pulls events from the source until the session reaches a terminal
// state, and returns that state. A source error ends the session as
// aborted.
func (s *Session) Drive(src InputSource) (SessionState, error) {
	for s.state == StatePlaying {
		ev, err := src.Next()
		if err != nil {
			s.state = StateAborted
			return s.state, err
		}
		s.Apply(ev)
	}
	return s.state, nil
}

// State returns the session's current state.
func (s *Session) State() SessionState {
	return s.state
}

// Game returns the underlying engine for read-only board queries.
func (s *Session) Game() *Game {
	return s.game
}

// Done reports whether the session has reached a terminal state.
func (s *Session) Done() bool {
	return s.state != StatePlaying
}
