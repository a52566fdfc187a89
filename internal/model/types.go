// Package model defines shared data structures.
package model

// Mode selects where the target text comes from.
type Mode string

const (
	// ModePassage plays a fixed poem picked at random.
	ModePassage Mode = "passage"
	// ModeWords plays a rolling window of dictionary words.
	ModeWords Mode = "words"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason explains why a session left the active state.
type EndReason string

const (
	EndNone     EndReason = ""
	EndTimeout  EndReason = "time expired"
	EndComplete EndReason = "completed"
	EndStopped  EndReason = "stopped"
)

// CharClass classifies a target rune against the typed input.
type CharClass int

const (
	CharPending CharClass = iota
	CharCorrect
	CharIncorrect
)

// Theme is the persisted color scheme flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config defines game settings after flags and the config file are merged.
type Config struct {
	Mode       Mode    `validate:"oneof=passage words"`
	Duration   int     `validate:"min=1,max=600"`
	WindowSize int     `validate:"min=1,max=1000"`
	Lang       string  `validate:"required"`
	WordList   string  `validate:"omitempty,filepath"`
	CapsPct    float64 `validate:"min=0,max=1"`
	PunctPct   float64 `validate:"min=0,max=1"`
	PunctSet   string  `validate:"required_with=PunctPct"`
}

// Session is an immutable snapshot of one typing attempt.
type Session struct {
	ID               string
	Status           Status
	Mode             Mode
	Title            string
	Target           string
	Typed            string
	Window           []string
	Duration         int
	SecondsRemaining int
	WPM              int
	Accuracy         int
	Score            int
	Level            int
	HighScore        int
	EndReason        EndReason
}

// Active reports whether the session accepts input.
func (s Session) Active() bool {
	return s.Status == StatusActive
}

// Elapsed returns whole seconds spent in the session.
func (s Session) Elapsed() int {
	return s.Duration - s.SecondsRemaining
}
