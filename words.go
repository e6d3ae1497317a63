package main

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"

	"vorteto/internal/types"
)

//go:embed data/words.json
var embeddedWords []byte

//go:embed data/accepted_words.txt
var embeddedAccepted []byte

// Lexicon supplies the solution candidates and the dictionary of valid
// guesses for a session. It is built once at startup; the engine never
// touches files or randomness itself.
type Lexicon struct {
	Entries  []types.WordEntry
	Accepted map[string]struct{}
	HintMap  map[string]string
}

// loadEmbeddedLexicon builds a Lexicon from the embedded word lists.
// Entries whose length differs from wordLength are skipped with a warning.
// The accepted set is the union of solution words and the accepted list.
func loadEmbeddedLexicon(wordLength int) (*Lexicon, error) {
	var wl types.WordList
	if err := json.Unmarshal(embeddedWords, &wl); err != nil {
		return nil, err
	}

	entries := lo.FilterMap(wl.Words, func(entry types.WordEntry, _ int) (types.WordEntry, bool) {
		entry.Word = strings.ToLower(strings.TrimSpace(entry.Word))
		if len([]rune(entry.Word)) != wordLength {
			logWarn("Skipping word %q: not %d letters", entry.Word, wordLength)
			return entry, false
		}
		return entry, true
	})
	if len(entries) == 0 {
		return nil, errors.New("no playable words in embedded word list")
	}

	accepted := make(map[string]struct{}, len(entries))
	lo.ForEach(entries, func(entry types.WordEntry, _ int) {
		accepted[entry.Word] = struct{}{}
	})

	scanner := bufio.NewScanner(strings.NewReader(string(embeddedAccepted)))
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		if len([]rune(w)) != wordLength {
			logWarn("Skipping accepted word %q: not %d letters", w, wordLength)
			continue
		}
		accepted[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Lexicon{
		Entries:  entries,
		Accepted: accepted,
		HintMap:  buildHintMap(entries),
	}, nil
}

// loadLexiconFromFile builds a Lexicon from a plain word list, one word per
// line. Every line feeds both the solution pool and the dictionary, all
// lines must share one length, and no hints are available.
func loadLexiconFromFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []types.WordEntry
	accepted := make(map[string]struct{})
	wordLength := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		n := len([]rune(w))
		if wordLength == 0 {
			wordLength = n
		}
		if n != wordLength {
			return nil, fmt.Errorf("word %q in %s is %d letters, expected %d", w, path, n, wordLength)
		}
		if _, ok := accepted[w]; ok {
			continue
		}
		entries = append(entries, types.WordEntry{Word: w})
		accepted[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no words in %s", path)
	}

	return &Lexicon{
		Entries:  entries,
		Accepted: accepted,
		HintMap:  buildHintMap(entries),
	}, nil
}

// buildHintMap creates a map from word to hint for fast lookup.
func buildHintMap(entries []types.WordEntry) map[string]string {
	return lo.Associate(entries, func(entry types.WordEntry) (string, string) {
		return entry.Word, entry.Hint
	})
}

// RandomEntry returns a random solution entry from the lexicon.
func (lx *Lexicon) RandomEntry() types.WordEntry {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(lx.Entries))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return lx.Entries[0]
	}
	return lx.Entries[n.Int64()]
}

// Dictionary returns the accepted words as a slice for engine construction.
func (lx *Lexicon) Dictionary() []string {
	return lo.Keys(lx.Accepted)
}

// HintFor returns the hint for a word, or an empty string if none exists.
func (lx *Lexicon) HintFor(word string) string {
	if word == "" {
		return ""
	}
	hint, ok := lx.HintMap[word]
	if ok {
		return hint
	}
	logWarn("Hint not found for word: %s", word)
	return ""
}
