package ui

import "testing"

func TestInitTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme with NO_COLOR set = %q, want none", got)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("color accessors must be empty without colors")
	}
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme must use the no-color TUI palette")
	}

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("theme with --no-color = %q, want none", got)
	}
}

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	tests := []struct {
		name string
		want Theme
	}{
		{"light", LightTheme},
		{"none", NoColorTheme},
		{"dark", DarkTheme},
		{"unknown", DarkTheme},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme(); got != tt.want {
			t.Errorf("SetTheme(%q) = %q, want %q", tt.name, got.Name, tt.want.Name)
		}
	}

	SetTheme("dark")
	if ColorCyan() != DarkTheme.Accent || ColorMagenta() != DarkTheme.Value || ColorBold() != "\033[1m" {
		t.Error("color accessors do not follow the dark theme")
	}
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme must use the dark TUI palette")
	}
}
