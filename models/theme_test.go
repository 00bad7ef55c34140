package models

import "testing"

func TestParseTheme(t *testing.T) {
	testCases := []struct {
		in   string
		want Theme
	}{
		{"", ThemeLight},
		{"light", ThemeLight},
		{"dark", ThemeDark},
		{"DARK", ThemeDark},
		{" dark ", ThemeDark},
		{"1", ThemeDark},
		{"true", ThemeDark},
		{"0", ThemeLight},
		{"purple", ThemeLight},
	}

	for _, tc := range testCases {
		if got := ParseTheme(tc.in); got != tc.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestThemeToggleRoundTrip verifies two toggles return to the starting theme
func TestThemeToggleRoundTrip(t *testing.T) {
	var theme Theme // zero value is the initial state
	if theme != ThemeLight {
		t.Fatal("zero value theme should be light")
	}

	once := theme.Toggle()
	if once != ThemeDark {
		t.Errorf("one toggle should give dark, got %v", once)
	}
	if twice := once.Toggle(); twice != ThemeLight {
		t.Errorf("two toggles should give light, got %v", twice)
	}
}

func TestThemePickAndString(t *testing.T) {
	if got := ThemeLight.Pick("bg-white", "bg-gray-800"); got != "bg-white" {
		t.Errorf("light Pick = %q", got)
	}
	if got := ThemeDark.Pick("bg-white", "bg-gray-800"); got != "bg-gray-800" {
		t.Errorf("dark Pick = %q", got)
	}
	if ThemeLight.String() != "light" || ThemeDark.String() != "dark" {
		t.Errorf("unexpected theme names %q %q", ThemeLight, ThemeDark)
	}
	if ParseTheme(ThemeDark.String()) != ThemeDark || ParseTheme(ThemeLight.String()) != ThemeLight {
		t.Error("String output should parse back to the same theme")
	}
}
