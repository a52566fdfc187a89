package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("EN")
	if !filter("blossom") {
		t.Fatalf("expected blossom to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", "Petal", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterOtherLangs(t *testing.T) {
	filter := FilterForLang("ja")
	if !filter("桜") || !filter("über") {
		t.Fatalf("expected non-english words to pass")
	}
	if filter("two words") || filter("") {
		t.Fatalf("expected entries with spaces to be rejected")
	}
}
