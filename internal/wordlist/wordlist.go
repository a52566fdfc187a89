// Package wordlist loads word lists from files or the embedded default.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words_en.txt
var defaultEnglish string

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return readWords(file)
}

// Default returns the embedded English word list.
func Default() []string {
	words, err := readWords(strings.NewReader(defaultEnglish))
	if err != nil {
		return nil
	}
	return words
}

// Resolve loads the list at path when it exists, falling back to the embedded
// list for English. The returned list is filtered for lang.
func Resolve(path, lang string) ([]string, string, error) {
	if path != "" {
		words, err := LoadWords(path)
		switch {
		case err == nil:
			return Filter(words, FilterForLang(lang)), path, nil
		case !os.IsNotExist(err):
			return nil, path, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
	}
	if strings.ToLower(lang) != "en" {
		return nil, path, fmt.Errorf("no word list for language %q at %s", lang, path)
	}
	return Default(), "embedded", nil
}

// Filter keeps the words accepted by keep.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
