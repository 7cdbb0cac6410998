package ui

import (
	"testing"
)

func TestInitTheme(t *testing.T) {
	// Themes are process-global; restore the default when done.
	defer SetCurrentTheme(DarkTheme)

	t.Run("NoColorFlag", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(true)
		if GetCurrentTheme().Name != NoColorTheme.Name {
			t.Errorf("expected no-color theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("NoColorEnv", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != NoColorTheme.Name {
			t.Errorf("expected no-color theme, got %q", GetCurrentTheme().Name)
		}
	})

	t.Run("ColorsEnabled", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if GetCurrentTheme().Name != DarkTheme.Name {
			t.Errorf("expected dark theme, got %q", GetCurrentTheme().Name)
		}
	})
}

func TestNoColorThemeIsEmpty(t *testing.T) {
	t.Parallel()
	theme := NoColorTheme
	codes := []string{
		theme.Primary, theme.Secondary, theme.Success, theme.Warning,
		theme.Error, theme.Info, theme.Bold, theme.Reset,
	}
	for i, code := range codes {
		if code != "" {
			t.Errorf("NoColorTheme field %d should be empty, got %q", i, code)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestColorAccessors(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want %q", ColorGreen(), DarkTheme.Success)
	}
	if ColorRed() != DarkTheme.Error {
		t.Errorf("ColorRed() = %q, want %q", ColorRed(), DarkTheme.Error)
	}
	if ColorReset() != DarkTheme.Reset {
		t.Errorf("ColorReset() = %q, want %q", ColorReset(), DarkTheme.Reset)
	}

	SetCurrentTheme(NoColorTheme)
	if ColorGreen() != "" || ColorRed() != "" || ColorReset() != "" {
		t.Error("no-color theme should yield empty escape codes")
	}
}
