package dates

import (
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-01", "2024-12-31", "2000-06-15"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}

	invalid := []string{"2026/01/01", "01-01-2026", "2026-13-01", "2026-01-32", "not-a-date", "", "2026-02-30"}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2026-06-15 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.June || got.Day() != 15 {
		t.Fatalf("ParseDate = %v", got)
	}

	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestResolveDeadline(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"2026-09-05", "2026-09-05", false},
		{"today", "2026-08-23", false},
		{"Tomorrow", "2026-08-24", false},
		{"next week", "", true},
		{"09/05/2026", "", true},
	}

	for _, tt := range tests {
		got, err := ResolveDeadline(tt.in, now)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveDeadline(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveDeadline(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveDeadline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
