// Package session implements the typing-session state machine.
//
// A Controller moves between idle, active, and ended states. Every accepted
// call produces a new immutable model.Session snapshot that is pushed to the
// subscribed presenters. The controller is driven from a single goroutine and
// is not safe for concurrent use.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/sakura/internal/metrics"
	"github.com/verte-zerg/sakura/internal/model"
	"github.com/verte-zerg/sakura/internal/textsource"
)

// DefaultDuration is the countdown length in seconds.
const DefaultDuration = 60

// ScoreStore persists the high score.
type ScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}

// TickSource calls Tick once per second between Start and Stop.
type TickSource interface {
	Start()
	Stop()
}

// Presenter receives a snapshot after every state change.
type Presenter interface {
	Present(s model.Session)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(model.Session)

// Present implements Presenter.
func (f PresenterFunc) Present(s model.Session) { f(s) }

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for storage failures and transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithDuration overrides the countdown length in seconds.
func WithDuration(seconds int) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.duration = seconds
		}
	}
}

// WithIDFunc overrides session ID generation.
func WithIDFunc(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// Controller owns one typing session at a time.
type Controller struct {
	source textsource.Source
	stream textsource.Stream
	scores ScoreStore
	ticks  TickSource
	log    *slog.Logger
	newID  func() string

	duration   int
	presenters map[int]Presenter
	nextSubID  int
	closed     bool

	state model.Session

	target         []rune
	typed          []rune
	window         []string
	committedWords int
	committedChars int
}

// New builds an idle Controller. A failing ScoreStore read leaves the high
// score at 0.
func New(source textsource.Source, scores ScoreStore, ticks TickSource, opts ...Option) *Controller {
	c := &Controller{
		source:     source,
		scores:     scores,
		ticks:      ticks,
		log:        slog.Default(),
		newID:      func() string { return uuid.NewString() },
		duration:   DefaultDuration,
		presenters: map[int]Presenter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if stream, ok := source.(textsource.Stream); ok {
		c.stream = stream
	}

	mode := model.ModePassage
	if c.stream != nil {
		mode = model.ModeWords
	}
	c.state = model.Session{
		Status:           model.StatusIdle,
		Mode:             mode,
		Duration:         c.duration,
		SecondsRemaining: c.duration,
		Accuracy:         100,
		Level:            1,
		HighScore:        c.loadHighScore(),
	}
	return c
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() model.Session {
	return c.snapshot()
}

// Subscribe registers p and immediately presents the current state.
func (c *Controller) Subscribe(p Presenter) (unsubscribe func()) {
	id := c.nextSubID
	c.nextSubID++
	c.presenters[id] = p
	p.Present(c.snapshot())
	return func() {
		delete(c.presenters, id)
	}
}

// Start begins a new session from idle or ended. It is ignored while active.
func (c *Controller) Start() model.Session {
	if c.closed || c.state.Status == model.StatusActive {
		return c.snapshot()
	}

	text := c.source.InitialText()
	c.typed = nil
	c.committedWords = 0
	c.committedChars = 0
	c.window = nil
	title := ""
	if c.stream != nil {
		c.window = strings.Fields(text)
		text = strings.Join(c.window, " ")
	} else if titled, ok := c.source.(textsource.Titled); ok {
		title = titled.Title()
	}
	c.target = []rune(text)

	c.state.ID = c.newID()
	c.state.Status = model.StatusActive
	c.state.Title = title
	c.state.SecondsRemaining = c.duration
	c.state.EndReason = model.EndNone
	c.recompute()

	c.log.Debug("session started", "id", c.state.ID, "mode", c.state.Mode, "chars", len(c.target))
	if c.ticks != nil {
		c.ticks.Start()
	}
	return c.publish()
}

// Tick advances the countdown by one second while active.
func (c *Controller) Tick() model.Session {
	if c.state.Status != model.StatusActive {
		return c.snapshot()
	}
	if c.state.SecondsRemaining > 0 {
		c.state.SecondsRemaining--
	}
	c.recompute()
	if c.state.SecondsRemaining == 0 {
		c.end(model.EndTimeout)
	}
	return c.publish()
}

// Submit replaces the typed buffer while active. Input outside an active
// session is dropped. Words mode accepts one rune past the target so the last
// pending word can still be closed by a separator.
func (c *Controller) Submit(text string) model.Session {
	if c.state.Status != model.StatusActive {
		return c.snapshot()
	}
	limit := len(c.target)
	if c.stream != nil {
		limit++
	}
	typed := []rune(text)
	if len(typed) > limit {
		typed = typed[:limit]
	}
	c.typed = typed

	if c.stream != nil {
		c.advanceWord()
		c.recompute()
		return c.publish()
	}

	c.recompute()
	if len(c.typed) == len(c.target) && string(c.typed) == string(c.target) {
		c.end(model.EndComplete)
	}
	return c.publish()
}

// Stop ends an active session without committing its score.
func (c *Controller) Stop() model.Session {
	if c.state.Status != model.StatusActive {
		return c.snapshot()
	}
	c.end(model.EndStopped)
	return c.publish()
}

// Close stops the tick source and drops all presenters. Later calls are
// ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.ticks != nil {
		c.ticks.Stop()
	}
	if c.state.Status == model.StatusActive {
		c.state.Status = model.StatusEnded
		c.state.EndReason = model.EndStopped
	}
	c.presenters = map[int]Presenter{}
}

// advanceWord drops the head word when the buffer holds it followed by a
// separator.
func (c *Controller) advanceWord() {
	buf := string(c.typed)
	if !strings.HasSuffix(buf, " ") || len(c.window) == 0 {
		return
	}
	fields := strings.Fields(buf)
	if len(fields) == 0 {
		return
	}
	head := c.window[0]
	if fields[0] != head {
		return
	}

	c.committedWords++
	c.committedChars += len([]rune(head)) + 1
	window := make([]string, 0, len(c.window))
	window = append(window, c.window[1:]...)
	if next := c.stream.NextWord(); next != "" {
		window = append(window, next)
	}
	c.window = window
	c.target = []rune(strings.Join(c.window, " "))
	c.typed = nil
}

func (c *Controller) recompute() {
	res := metrics.Compute(c.target, c.typed, c.committedWords, c.committedChars, c.duration-c.state.SecondsRemaining)
	c.state.WPM = res.WPM
	c.state.Accuracy = res.Accuracy
	c.state.Score = res.Score
	c.state.Level = res.Level
}

func (c *Controller) end(reason model.EndReason) {
	if c.ticks != nil {
		c.ticks.Stop()
	}
	c.state.Status = model.StatusEnded
	c.state.EndReason = reason
	if reason != model.EndStopped {
		c.commitScore()
	}
	c.log.Debug("session ended", "id", c.state.ID, "reason", string(reason), "score", c.state.Score, "wpm", c.state.WPM, "accuracy", c.state.Accuracy)
}

func (c *Controller) commitScore() {
	if c.state.Score <= c.state.HighScore {
		return
	}
	c.state.HighScore = c.state.Score
	if c.scores == nil {
		return
	}
	if err := c.scores.SetHighScore(context.Background(), c.state.Score); err != nil {
		c.log.Warn("failed to save high score", "score", c.state.Score, "err", err)
	}
}

func (c *Controller) loadHighScore() int {
	if c.scores == nil {
		return 0
	}
	score, err := c.scores.HighScore(context.Background())
	if err != nil {
		c.log.Warn("failed to load high score; starting from 0", "err", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

func (c *Controller) snapshot() model.Session {
	s := c.state
	s.Target = string(c.target)
	s.Typed = string(c.typed)
	if c.window != nil {
		s.Window = append([]string(nil), c.window...)
	}
	return s
}

func (c *Controller) publish() model.Session {
	s := c.snapshot()
	for _, p := range c.presenters {
		p.Present(s)
	}
	return s
}
