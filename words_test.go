package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedLexicon(t *testing.T) {
	lx, err := loadEmbeddedLexicon(DefaultWordLength)
	if err != nil {
		t.Fatalf("loadEmbeddedLexicon returned error: %v", err)
	}
	if len(lx.Entries) == 0 {
		t.Fatal("Expected embedded solution entries")
	}
	for _, entry := range lx.Entries {
		if got := len([]rune(entry.Word)); got != DefaultWordLength {
			t.Errorf("Entry %q has length %d, want %d", entry.Word, got, DefaultWordLength)
		}
		if _, ok := lx.Accepted[entry.Word]; !ok {
			t.Errorf("Solution %q missing from accepted set", entry.Word)
		}
	}
	if _, ok := lx.Accepted["jolly"]; !ok {
		t.Error("Accepted set should include words from accepted_words.txt")
	}
	if lx.HintFor("hello") == "" {
		t.Error("Expected a hint for an embedded solution word")
	}
}

func TestLoadEmbeddedLexiconFiltersOtherLengths(t *testing.T) {
	// No embedded word is 7 letters, so filtering must leave nothing.
	if _, err := loadEmbeddedLexicon(7); err == nil {
		t.Error("Expected error when no embedded word matches the length")
	}
}

func TestLoadLexiconFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Hello\nworld\n\nhello\ncrane\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	lx, err := loadLexiconFromFile(path)
	if err != nil {
		t.Fatalf("loadLexiconFromFile returned error: %v", err)
	}
	if len(lx.Entries) != 3 {
		t.Errorf("Entries length = %d, want 3 (deduplicated, folded)", len(lx.Entries))
	}
	if _, ok := lx.Accepted["hello"]; !ok {
		t.Error("Accepted set should contain folded words")
	}
	if lx.HintFor("hello") != "" {
		t.Error("File-supplied lexicons have no hints")
	}
}

func TestLoadLexiconFromFileRejectsMixedLengths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("hello\nhell\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadLexiconFromFile(path); err == nil {
		t.Error("Expected error for mixed word lengths")
	}
}

func TestLoadLexiconFromFileRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadLexiconFromFile(path); err == nil {
		t.Error("Expected error for empty word list")
	}
}

func TestLoadLexiconFromFileMissing(t *testing.T) {
	if _, err := loadLexiconFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRandomEntry(t *testing.T) {
	lx, err := loadEmbeddedLexicon(DefaultWordLength)
	if err != nil {
		t.Fatal(err)
	}
	known := make(map[string]struct{}, len(lx.Entries))
	for _, entry := range lx.Entries {
		known[entry.Word] = struct{}{}
	}
	for i := 0; i < 20; i++ {
		entry := lx.RandomEntry()
		if _, ok := known[entry.Word]; !ok {
			t.Errorf("RandomEntry returned unknown word: %q", entry.Word)
		}
	}
}

func TestDictionary(t *testing.T) {
	lx, err := loadEmbeddedLexicon(DefaultWordLength)
	if err != nil {
		t.Fatal(err)
	}
	dict := lx.Dictionary()
	if len(dict) != len(lx.Accepted) {
		t.Errorf("Dictionary length = %d, want %d", len(dict), len(lx.Accepted))
	}
}

func TestHintFor(t *testing.T) {
	lx := &Lexicon{HintMap: map[string]string{"apple": "a fruit"}}
	if lx.HintFor("apple") != "a fruit" {
		t.Error("Expected hint for known word")
	}
	if lx.HintFor("") != "" {
		t.Error("Expected empty hint for empty word")
	}
	if lx.HintFor("unknown") != "" {
		t.Error("Expected empty hint for unknown word")
	}
}
