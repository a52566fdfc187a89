// Package metrics contains the speed, accuracy, and score calculations.
package metrics

import (
	"math"
	"strings"

	"github.com/verte-zerg/sakura/internal/model"
)

// PointsPerLevel is the score step between cosmetic levels.
const PointsPerLevel = 100

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// WordsPerMinute converts a word count over elapsed seconds into a rounded rate.
func WordsPerMinute(words, elapsedSeconds int) int {
	if elapsedSeconds <= 0 || words <= 0 {
		return 0
	}
	minutes := float64(elapsedSeconds) / 60.0
	return int(math.Round(float64(words) / minutes))
}

// Accuracy returns the rounded percentage of correct characters.
func Accuracy(correct, typed int) int {
	if typed <= 0 {
		return 100
	}
	if correct < 0 {
		correct = 0
	}
	if correct > typed {
		correct = typed
	}
	return int(math.Round(float64(correct) / float64(typed) * 100))
}

// Score weights speed by accuracy.
func Score(wpm, accuracy int) int {
	if wpm <= 0 || accuracy <= 0 {
		return 0
	}
	return int(math.Round(float64(wpm) * float64(accuracy) / 100.0))
}

// Level maps a score onto a 1-based level.
func Level(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// CorrectCount counts positions where typed matches target.
func CorrectCount(target, typed []rune) int {
	n := 0
	for i, r := range typed {
		if i >= len(target) {
			break
		}
		if r == target[i] {
			n++
		}
	}
	return n
}

// Classify labels each target rune as pending, correct, or incorrect.
func Classify(target, typed []rune) []model.CharClass {
	out := make([]model.CharClass, len(target))
	for i := range target {
		switch {
		case i >= len(typed):
			out[i] = model.CharPending
		case typed[i] == target[i]:
			out[i] = model.CharCorrect
		default:
			out[i] = model.CharIncorrect
		}
	}
	return out
}

// Result is the derived metric set for one recomputation.
type Result struct {
	WPM      int
	Accuracy int
	Score    int
	Level    int
}

// Compute derives all metrics. committedWords and committedChars carry words
// already cleared from the buffer in words mode and are zero in passage mode.
func Compute(target, typed []rune, committedWords, committedChars, elapsedSeconds int) Result {
	words := committedWords + WordCount(string(typed))
	correct := committedChars + CorrectCount(target, typed)
	total := committedChars + len(typed)

	wpm := WordsPerMinute(words, elapsedSeconds)
	acc := Accuracy(correct, total)
	score := Score(wpm, acc)
	return Result{
		WPM:      wpm,
		Accuracy: acc,
		Score:    score,
		Level:    Level(score),
	}
}
