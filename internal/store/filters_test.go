package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "filters.yaml"))
}

func TestListMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	filters, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(filters) != 0 {
		t.Errorf("filters = %+v, want empty", filters)
	}
}

func TestSaveAndGetNormalizesName(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.Save("Morning Review", "overdue | today")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if entry.Name != "morning-review" {
		t.Errorf("Name = %q, want slug", entry.Name)
	}

	got, ok, err := s.Get("Morning Review")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected saved filter to be found")
	}
	if got.Query != "overdue | today" {
		t.Errorf("Query = %q", got.Query)
	}
}

func TestSaveUpserts(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Save("review", "today"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("review", "overdue"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	filters, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(filters) != 1 {
		t.Fatalf("filters = %+v, want one entry", filters)
	}
	if filters[0].Query != "overdue" {
		t.Errorf("Query = %q, want overwritten value", filters[0].Query)
	}
}

func TestSaveRejectsEmptyInputs(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Save("   ", "today"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := s.Save("ok", "  "); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Save("review", "today"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	removed, err := s.Remove("review")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Error("Remove returned false for existing filter")
	}

	removed, err = s.Remove("review")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed {
		t.Error("Remove returned true for missing filter")
	}
}

func TestListSorted(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if _, err := s.Save(name, "today"); err != nil {
			t.Fatalf("Save(%q): %v", name, err)
		}
	}

	filters, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"alpha", "mike", "zulu"}
	for i, name := range want {
		if filters[i].Name != name {
			t.Errorf("filters[%d].Name = %q, want %q", i, filters[i].Name, name)
		}
	}
}
