package textsource

import (
	"strings"
	"testing"

	"github.com/verte-zerg/sakura/internal/generator"
)

func TestPassagesPickFromSet(t *testing.T) {
	src := NewPassages(generator.NewWithSeed(nil, generator.Options{}, 3), nil)
	for i := 0; i < 20; i++ {
		text := src.InitialText()
		found := false
		for _, p := range CherryBlossomPoems {
			if p.Content == text && p.Title == src.Title() {
				found = true
			}
		}
		if !found {
			t.Fatalf("unexpected passage %q (%q)", text, src.Title())
		}
	}
}

func TestWordsWindow(t *testing.T) {
	gen := generator.NewWithSeed([]string{"petal", "bloom"}, generator.Options{}, 5)
	src := NewWords(gen, 0)
	if src.WindowSize() != DefaultWindowSize {
		t.Fatalf("expected default window, got %d", src.WindowSize())
	}
	words := strings.Fields(src.InitialText())
	if len(words) != DefaultWindowSize {
		t.Fatalf("expected %d words, got %d", DefaultWindowSize, len(words))
	}
	next := src.NextWord()
	if next != "petal" && next != "bloom" {
		t.Fatalf("unexpected next word %q", next)
	}
}

func TestWordsImplementsStream(t *testing.T) {
	var src Source = NewWords(generator.NewWithSeed([]string{"a"}, generator.Options{}, 1), 4)
	if _, ok := src.(Stream); !ok {
		t.Fatalf("expected Words to implement Stream")
	}
	var passages Source = NewPassages(generator.NewWithSeed(nil, generator.Options{}, 1), nil)
	if _, ok := passages.(Stream); ok {
		t.Fatalf("passages must not stream")
	}
}
