package ui

import "testing"

func TestConfigureTheme(t *testing.T) {
	t.Cleanup(func() { ConfigureTheme(defaultAccent) })

	ConfigureTheme("#FF0000")
	if AccentColor() != "#FF0000" {
		t.Fatalf("AccentColor = %q after hex config", AccentColor())
	}

	ConfigureTheme("39")
	if AccentColor() != "39" {
		t.Fatalf("AccentColor = %q after ANSI config", AccentColor())
	}
}

func TestConfigureThemeRejectsInvalid(t *testing.T) {
	t.Cleanup(func() { ConfigureTheme(defaultAccent) })
	ConfigureTheme(defaultAccent)

	for _, bad := range []string{"", "red", "#GGGGGG", "#FFF", "2563"} {
		ConfigureTheme(bad)
		if AccentColor() != defaultAccent {
			t.Fatalf("ConfigureTheme(%q) changed accent to %q", bad, AccentColor())
		}
	}
}

func TestStatusSymbols(t *testing.T) {
	if got := Success("done"); got != "✓ done" {
		t.Fatalf("Success = %q", got)
	}
	if got := Errorf("failed: %d", 7); got != "✗ failed: 7" {
		t.Fatalf("Errorf = %q", got)
	}
	if got := Warning("careful"); got != "⚠ careful" {
		t.Fatalf("Warning = %q", got)
	}
}
