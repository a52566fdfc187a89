package theme

import (
	"testing"

	"github.com/verte-zerg/sakura/internal/model"
)

func TestToggle(t *testing.T) {
	if Toggle(model.ThemeLight) != model.ThemeDark || Toggle(model.ThemeDark) != model.ThemeLight {
		t.Fatalf("toggle must flip between light and dark")
	}
	if Toggle("") != model.ThemeDark {
		t.Fatalf("unknown theme toggles like light")
	}
}

func TestParse(t *testing.T) {
	th, err := Parse(" Dark ")
	if err != nil || th != model.ThemeDark {
		t.Fatalf("expected dark, got %q (%v)", th, err)
	}
	if _, err := Parse("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestForFallsBackToLight(t *testing.T) {
	if For("sepia").Name != model.ThemeLight {
		t.Fatalf("expected light fallback")
	}
	if For(model.ThemeDark).Name != model.ThemeDark {
		t.Fatalf("expected dark palette")
	}
}
