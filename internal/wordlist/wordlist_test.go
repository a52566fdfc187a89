package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultListLoads(t *testing.T) {
	words := Default()
	if len(words) < 100 {
		t.Fatalf("expected embedded list, got %d words", len(words))
	}
	filter := FilterForLang("en")
	for _, w := range words {
		if !filter(w) {
			t.Fatalf("embedded word %q fails english filter", w)
		}
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(path, []byte("petal\n\nCafé\nbreeze\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	words, source, err := Resolve(path, "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if source != path {
		t.Fatalf("expected source %s, got %s", path, source)
	}
	if len(words) != 2 || words[0] != "petal" || words[1] != "breeze" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestResolveMissingFallsBack(t *testing.T) {
	words, source, err := Resolve(filepath.Join(t.TempDir(), "en.txt"), "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if source != "embedded" || len(words) == 0 {
		t.Fatalf("expected embedded fallback, got %s (%d words)", source, len(words))
	}
	if _, _, err := Resolve(filepath.Join(t.TempDir(), "de.txt"), "de"); err == nil {
		t.Fatalf("expected error for missing non-english list")
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
