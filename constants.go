package main

// Game configuration defaults
const (
	DefaultMaxTries   = 6 // Maximum number of guesses per game
	DefaultWordLength = 5 // Length of the words in the embedded lists
)

// Hit status constants
const (
	HitStatusHit      HitInfo = "hit"
	HitStatusContains HitInfo = "contains"
	HitStatusMiss     HitInfo = "miss"
	HitStatusNone     HitInfo = "none"
)

// Session state constants
const (
	StatePlaying SessionState = "playing"
	StateWon     SessionState = "won"
	StateLost    SessionState = "lost"
	StateAborted SessionState = "aborted"
)

// Error message constants
const (
	ErrorWrongLength   = "word is not the correct length"
	ErrorInvalidWord   = "word is not valid"
	ErrorNoMoreGuesses = "no more guesses allowed"
)

// Environment variable keys
const (
	EnvMaxTries   = "MAX_TRIES"
	EnvWordLength = "WORD_LENGTH"
	EnvLogFile    = "LOG_FILE"
)
