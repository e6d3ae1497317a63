package main

import (
	"errors"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Guess validation errors. ErrWrongLength and ErrInvalidWord are the
// recoverable, player-facing kinds surfaced through LastError;
// ErrNoMoreGuesses reports a commit against an already-complete session.
var (
	ErrWrongLength   = errors.New(ErrorWrongLength)
	ErrInvalidWord   = errors.New(ErrorInvalidWord)
	ErrNoMoreGuesses = errors.New(ErrorNoMoreGuesses)
)

// Game holds the state of a single word-guessing session: the solution,
// the dictionary of valid guesses, the committed guess history and the
// in-progress input buffer. It performs no I/O and never renders anything.
type Game struct {
	solution   []rune
	dictionary map[string]struct{}
	guesses    []string
	input      []rune
	lastErr    error
	anyWord    bool
	maxTries   int
}

// NewGame creates a Game for the given solution and dictionary. The solution
// and all dictionary words are lowercase-folded. When anyWord is true,
// dictionary membership is not enforced. A non-positive maxTries falls back
// to DefaultMaxTries.
func NewGame(solution string, dictionary []string, anyWord bool, maxTries int) *Game {
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	dict := make(map[string]struct{}, len(dictionary))
	lo.ForEach(dictionary, func(w string, _ int) {
		dict[strings.ToLower(w)] = struct{}{}
	})
	return &Game{
		solution:   []rune(strings.ToLower(solution)),
		dictionary: dict,
		guesses:    []string{},
		maxTries:   maxTries,
		anyWord:    anyWord,
	}
}

// AddChar appends a lowercase-folded character to the input buffer. Once the
// buffer has reached the solution's length this is a no-op. It never fails
// and never touches the last error.
func (g *Game) AddChar(c rune) {
	if len(g.input) < len(g.solution) {
		g.input = append(g.input, unicode.ToLower(c))
	}
}

// Backspace removes the last character of the input buffer, if any.
func (g *Game) Backspace() {
	if len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
}

// Commit finalizes the input buffer as a guess attempt. The buffer is
// cleared on every attempt, success or failure, so a rejected guess must be
// retyped. Validation order: session completeness, then length, then
// dictionary membership. Length is counted in runes, not bytes.
//
// On success the guess is appended to the history, the last error is
// cleared, and won reports whether the guess equals the solution. On a
// length or dictionary failure the guess is not appended and the error is
// recorded as the last error. ErrNoMoreGuesses is never recorded: attempt
// exhaustion is a session condition, not a player mistake.
func (g *Game) Commit() (won bool, err error) {
	guess := string(g.input)
	g.input = nil

	if len(g.guesses) >= g.maxTries {
		return false, ErrNoMoreGuesses
	}
	if len([]rune(guess)) != len(g.solution) {
		g.lastErr = ErrWrongLength
		return false, ErrWrongLength
	}
	if !g.anyWord {
		if _, ok := g.dictionary[guess]; !ok {
			g.lastErr = ErrInvalidWord
			return false, ErrInvalidWord
		}
	}

	g.guesses = append(g.guesses, guess)
	g.lastErr = nil
	return g.Won(), nil
}

// Won reports whether the most recently committed guess equals the solution.
func (g *Game) Won() bool {
	if len(g.guesses) == 0 {
		return false
	}
	return g.guesses[len(g.guesses)-1] == string(g.solution)
}

// Exhausted reports whether the guess history has reached the maximum
// number of tries.
func (g *Game) Exhausted() bool {
	return len(g.guesses) >= g.maxTries
}

// Hits scores the committed guess at the given row against the solution.
// Position i is a hit when the letters match, contains when the letter
// occurs anywhere in the solution, and a miss otherwise. The containment
// check does not consume letters, so a guess with repeated letters can
// report contains for more occurrences than the solution holds.
//
// The row must index a committed guess; an out-of-range row is a caller bug
// and panics.
func (g *Game) Hits(row int) []HitInfo {
	guess := []rune(g.guesses[row])
	hits := make([]HitInfo, len(guess))
	for i, c := range guess {
		switch {
		case c == g.solution[i]:
			hits[i] = HitStatusHit
		case lo.Contains(g.solution, c):
			hits[i] = HitStatusContains
		default:
			hits[i] = HitStatusMiss
		}
	}
	return hits
}

// WordLength returns the solution's length in runes.
func (g *Game) WordLength() int {
	return len(g.solution)
}

// MaxTries returns the maximum number of guesses for this session.
func (g *Game) MaxTries() int {
	return g.maxTries
}

// Guesses returns the committed guesses in attempt order.
func (g *Game) Guesses() []string {
	return g.guesses
}

// Input returns the current contents of the input buffer.
func (g *Game) Input() string {
	return string(g.input)
}

// LastError returns the error recorded by the most recent failed commit, or
// nil. It is cleared by a successful commit, not by editing the buffer.
func (g *Game) LastError() error {
	return g.lastErr
}

// Solution reveals the solution word. The front end only calls this once the
// session is over.
func (g *Game) Solution() string {
	return string(g.solution)
}
