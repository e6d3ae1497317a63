package main

// HitInfo is the per-letter evaluation of a committed guess against the
// solution: "hit", "contains", "miss", or "none" for unplayed board cells.
type HitInfo string

// SessionState is the coarse state of a single play-through.
type SessionState string

// EventKind identifies one discrete input event fed to a session.
type EventKind int

// Input event kinds
const (
	EventChar EventKind = iota // a character was entered
	EventBackspace
	EventConfirm
	EventAbort
)

// InputEvent is one unit of player input. Char is only meaningful for
// EventChar events.
type InputEvent struct {
	Kind EventKind
	Char rune
}

// InputSource supplies input events one at a time. Next blocks until an
// event is available; each event is fully processed before the next is
// requested.
type InputSource interface {
	Next() (InputEvent, error)
}
