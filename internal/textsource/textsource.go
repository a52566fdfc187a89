// Package textsource supplies the text a session must reproduce.
package textsource

import (
	"strings"

	"github.com/verte-zerg/sakura/internal/generator"
)

// DefaultWindowSize is the number of pending words kept in the words mode.
const DefaultWindowSize = 100

// Source provides the target text for a new session.
type Source interface {
	InitialText() string
}

// Stream is a Source that also refills a rolling window of words.
type Stream interface {
	Source
	NextWord() string
	WindowSize() int
}

// Titled is implemented by sources whose text carries a display title.
type Titled interface {
	Title() string
}

// Passage is a short poem.
type Passage struct {
	Title   string
	Content string
}

// CherryBlossomPoems is the built-in passage set.
var CherryBlossomPoems = []Passage{
	{
		Title:   "Spring's Whisper",
		Content: "Cherry blossoms dance in the spring breeze, singing the beauty of a fleeting moment.",
	},
	{
		Title:   "Dance of Petals",
		Content: "Delicate petals falling gently, nature's ballerinas twirling with the wind.",
	},
	{
		Title:   "Cherry Blossom Embrace",
		Content: "Sharing smiles under the cherry tree, dreaming of eternity in a shower of blossoms.",
	},
	{
		Title:   "Ephemeral Beauty",
		Content: "Cherry blossoms capture a moment's beauty, eternal charm in their brief existence.",
	},
	{
		Title:   "Spring's Message",
		Content: "Cherry blossom scent on the gentle breeze, nature's letter heralding the change of seasons.",
	},
}

// Passages picks one passage at random per session.
type Passages struct {
	gen      *generator.Generator
	passages []Passage
	current  Passage
}

// NewPassages returns a passage source. An empty set uses CherryBlossomPoems.
func NewPassages(gen *generator.Generator, passages []Passage) *Passages {
	if len(passages) == 0 {
		passages = CherryBlossomPoems
	}
	return &Passages{gen: gen, passages: passages}
}

// InitialText implements Source.
func (p *Passages) InitialText() string {
	p.current = p.passages[p.gen.Intn(len(p.passages))]
	return p.current.Content
}

// Title returns the title of the last picked passage.
func (p *Passages) Title() string {
	return p.current.Title
}

// Words streams uniformly sampled words.
type Words struct {
	gen    *generator.Generator
	window int
}

// NewWords returns a word stream. A non-positive window uses DefaultWindowSize.
func NewWords(gen *generator.Generator, window int) *Words {
	if window <= 0 {
		window = DefaultWindowSize
	}
	return &Words{gen: gen, window: window}
}

// InitialText implements Source.
func (w *Words) InitialText() string {
	return strings.Join(w.gen.Generate(w.window), " ")
}

// NextWord implements Stream.
func (w *Words) NextWord() string {
	return w.gen.Word()
}

// WindowSize implements Stream.
func (w *Words) WindowSize() int {
	return w.window
}
