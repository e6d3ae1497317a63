package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagAnyWord  bool
	flagWordFile string
	flagMaxTries int
)

var rootCmd = &cobra.Command{
	Use:           "vorteto",
	Short:         "A word-guessing game for the terminal",
	Long:          "Vorteto is a terminal word-guessing game: guess the hidden word letter by letter within a fixed number of tries.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagAnyWord, "any-word", "a", false, "allow any word to be guessed")
	rootCmd.Flags().StringVarP(&flagWordFile, "word-file", "w", "", "use a word list from a file")
	rootCmd.Flags().IntVarP(&flagMaxTries, "max-tries", "t", 0, "maximum number of guesses (default 6)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runGame wires the word source, engine, session and TUI together and plays
// one session to completion.
func runGame() error {
	_ = godotenv.Load()

	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sessionID := uuid.NewString()
	logInfo("Starting vorteto session %s", sessionID)

	maxTries := flagMaxTries
	if maxTries <= 0 {
		maxTries = getEnvInt(EnvMaxTries, DefaultMaxTries)
	}

	lexicon, err := loadLexicon(flagWordFile)
	if err != nil {
		logWarn("Failed to load words: %v", err)
		return err
	}
	logInfo("Loaded %d solution words, %d accepted words for session %s",
		len(lexicon.Entries), len(lexicon.Accepted), sessionID)

	entry := lexicon.RandomEntry()
	logInfo("Session %s solution: %s (hint: %s)", sessionID, entry.Word, entry.Hint)

	game := NewGame(entry.Word, lexicon.Dictionary(), flagAnyWord, maxTries)
	session := NewSession(game)

	program := tea.NewProgram(newModel(session, lexicon.HintFor(entry.Word)))
	if _, err := program.Run(); err != nil {
		logWarn("Session %s terminal error: %v", sessionID, err)
		return err
	}

	logInfo("Session %s finished: %s after %d of %d guesses",
		sessionID, session.State(), len(game.Guesses()), game.MaxTries())
	return nil
}

// loadLexicon builds the session's word source: the embedded lists by
// default, or a caller-supplied plain word list.
func loadLexicon(wordFile string) (*Lexicon, error) {
	if wordFile != "" {
		logInfo("Loading word list from %s", wordFile)
		return loadLexiconFromFile(wordFile)
	}
	return loadEmbeddedLexicon(getEnvInt(EnvWordLength, DefaultWordLength))
}
