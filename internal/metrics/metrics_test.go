package metrics

import (
	"math"
	"testing"

	"github.com/verte-zerg/sakura/internal/model"
)

func TestAccuracyBounds(t *testing.T) {
	cases := []struct {
		correct, typed, want int
	}{
		{0, 0, 100},
		{0, 3, 0},
		{2, 3, 67},
		{3, 3, 100},
		{1, 8, 13},
		{5, 3, 100},
	}
	for _, tc := range cases {
		got := Accuracy(tc.correct, tc.typed)
		if got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", tc.correct, tc.typed, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Accuracy(%d, %d) out of range: %d", tc.correct, tc.typed, got)
		}
	}
}

func TestWordsPerMinuteZeroElapsed(t *testing.T) {
	if got := WordsPerMinute(12, 0); got != 0 {
		t.Fatalf("expected 0 wpm at zero elapsed, got %d", got)
	}
	if got := WordsPerMinute(10, 30); got != 20 {
		t.Fatalf("expected 20 wpm, got %d", got)
	}
	if got := WordsPerMinute(0, 30); got != 0 {
		t.Fatalf("expected 0 wpm with no words, got %d", got)
	}
}

func TestWordCountIgnoresBlank(t *testing.T) {
	if got := WordCount("   "); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
	if got := WordCount(" cherry  blossom "); got != 2 {
		t.Fatalf("expected 2 words, got %d", got)
	}
}

func TestScoreMatchesFormula(t *testing.T) {
	for wpm := 0; wpm <= 150; wpm += 7 {
		for acc := 0; acc <= 100; acc += 9 {
			want := int(math.Round(float64(wpm) * float64(acc) / 100))
			if got := Score(wpm, acc); got != want {
				t.Fatalf("Score(%d, %d) = %d, want %d", wpm, acc, got, want)
			}
		}
	}
}

func TestLevel(t *testing.T) {
	if Level(0) != 1 || Level(99) != 1 || Level(100) != 2 || Level(250) != 3 {
		t.Fatalf("unexpected level steps")
	}
}

func TestClassify(t *testing.T) {
	classes := Classify([]rune("abc"), []rune("abx"))
	want := []model.CharClass{model.CharCorrect, model.CharCorrect, model.CharIncorrect}
	for i := range want {
		if classes[i] != want[i] {
			t.Fatalf("class %d = %v, want %v", i, classes[i], want[i])
		}
	}
	classes = Classify([]rune("ab"), nil)
	if classes[0] != model.CharPending || classes[1] != model.CharPending {
		t.Fatalf("expected pending classes for empty input")
	}
}

func TestComputeCommittedWords(t *testing.T) {
	res := Compute([]rune("dog sun"), []rune("do"), 3, 12, 30)
	if res.WPM != 8 {
		t.Fatalf("expected 8 wpm, got %d", res.WPM)
	}
	if res.Accuracy != 100 {
		t.Fatalf("expected 100 accuracy, got %d", res.Accuracy)
	}
	if res.Score != Score(res.WPM, res.Accuracy) {
		t.Fatalf("score does not follow formula: %+v", res)
	}
}
