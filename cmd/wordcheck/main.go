package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"vorteto/internal/types"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: wordcheck <word-list-file>...")
	}

	problems := 0
	for _, path := range os.Args[1:] {
		n, err := checkFile(path)
		if err != nil {
			log.Fatalf("Error checking %s: %v", path, err)
		}
		problems += n
	}

	if problems > 0 {
		fmt.Printf("Found %d problem(s)\n", problems)
		os.Exit(1)
	}
	fmt.Println("All word lists OK")
}

// checkFile validates one word list and returns the number of problems
// found. Files ending in .json are treated as solution lists with hints,
// anything else as plain one-word-per-line lists.
func checkFile(path string) (int, error) {
	var entries []types.WordEntry
	var err error
	if strings.HasSuffix(path, ".json") {
		entries, err = readJSONList(path)
	} else {
		entries, err = readPlainList(path)
	}
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		fmt.Printf("%s: list is empty\n", path)
		return 1, nil
	}

	problems := 0
	report := func(format string, v ...any) {
		fmt.Printf(path+": "+format+"\n", v...)
		problems++
	}

	wordLength := len([]rune(entries[0].Word))
	seen := make(map[string]struct{}, len(entries))
	withHints := strings.HasSuffix(path, ".json")

	for _, entry := range entries {
		word := entry.Word
		if n := len([]rune(word)); n != wordLength {
			report("word %q is %d letters, expected %d", word, n, wordLength)
		}
		for _, r := range word {
			if !unicode.IsLetter(r) || !unicode.IsLower(r) {
				report("word %q contains non-lowercase-letter %q", word, r)
				break
			}
		}
		if _, ok := seen[word]; ok {
			report("duplicate word %q", word)
		}
		seen[word] = struct{}{}
		if withHints && strings.TrimSpace(entry.Hint) == "" {
			report("word %q is missing a hint", word)
		}
	}

	fmt.Printf("%s: %d words, length %d, %d problem(s)\n", path, len(entries), wordLength, problems)
	return problems, nil
}

// readJSONList reads a solution list in the words.json format.
func readJSONList(path string) ([]types.WordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wl types.WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	for i := range wl.Words {
		wl.Words[i].Word = strings.TrimSpace(wl.Words[i].Word)
	}
	return wl.Words, nil
}

// readPlainList reads a one-word-per-line list, skipping blank lines.
func readPlainList(path string) ([]types.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []types.WordEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		entries = append(entries, types.WordEntry{Word: w})
	}
	return entries, scanner.Err()
}
