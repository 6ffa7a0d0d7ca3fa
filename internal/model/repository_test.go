package model

import (
	"reflect"
	"testing"
)

func TestNormalizedFillsNilCollections(t *testing.T) {
	r := Repository{Name: "portfolio"}

	got := r.Normalized()
	if got.Languages == nil {
		t.Error("expected Languages to be non-nil after Normalized()")
	}
	if got.Topics == nil {
		t.Error("expected Topics to be non-nil after Normalized()")
	}
	if len(got.Languages) != 0 || len(got.Topics) != 0 {
		t.Errorf("expected empty collections, got %d languages and %d topics",
			len(got.Languages), len(got.Topics))
	}
}

func TestNormalizedIsIdempotent(t *testing.T) {
	r := Repository{
		ID:   "R_1",
		Name: "portfolio",
		PrimaryLanguage: &Language{
			Name:  "Go",
			Color: "#00ADD8",
		},
		Languages: []Language{{Name: "Go", Color: "#00ADD8"}},
		Topics:    []string{"portfolio", "github"},
	}

	once := r.Normalized()
	twice := once.Normalized()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalized() is not idempotent:\n once: %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizedPreservesExistingValues(t *testing.T) {
	r := Repository{
		Languages: []Language{{Name: "Python", Color: "#3572A5"}},
		Topics:    []string{"flask"},
	}

	got := r.Normalized()
	if len(got.Languages) != 1 || got.Languages[0].Name != "Python" {
		t.Errorf("expected languages preserved, got %+v", got.Languages)
	}
	if len(got.Topics) != 1 || got.Topics[0] != "flask" {
		t.Errorf("expected topics preserved, got %+v", got.Topics)
	}
}
