package search

import (
	"testing"

	"photo-catalog/internal/media"
)

func TestAdvancedEmptyFiltersReturnsInputUnchanged(t *testing.T) {
	items := []media.PhotoItem{
		photo("a.jpg", "jpg", nil),
		photo("b.jpg", "jpg", nil),
	}

	got := Advanced(items, AdvancedConfig{MatchMode: ModeAND})
	if len(got) != len(items) {
		t.Fatalf("got %d items, want %d", len(got), len(items))
	}
	// Opt-in semantics: with nothing configured the very same slice
	// comes back.
	if &got[0] != &items[0] {
		t.Error("expected the input slice itself, not a copy")
	}
}

func TestAdvancedSingleField(t *testing.T) {
	items := []media.PhotoItem{
		photo("canon.jpg", "jpg", map[string]string{media.KeyMake: "Canon"}),
		photo("nikon.jpg", "jpg", map[string]string{media.KeyMake: "NIKON CORPORATION"}),
		photo("bare.jpg", "jpg", nil),
	}

	tests := []struct {
		name   string
		filter FieldFilter
		want   []string
	}{
		{
			"exact value",
			FieldFilter{FieldKey: media.KeyMake, SelectedValues: []string{"Canon"}, Mode: ModeOR},
			[]string{"canon.jpg"},
		},
		{
			"substring and case-insensitive",
			FieldFilter{FieldKey: media.KeyMake, SelectedValues: []string{"nikon"}, Mode: ModeOR},
			[]string{"nikon.jpg"},
		},
		{
			"or across values",
			FieldFilter{FieldKey: media.KeyMake, SelectedValues: []string{"Canon", "Nikon"}, Mode: ModeOR},
			[]string{"canon.jpg", "nikon.jpg"},
		},
		{
			"and across values",
			FieldFilter{FieldKey: media.KeyMake, SelectedValues: []string{"nikon", "corporation"}, Mode: ModeAND},
			[]string{"nikon.jpg"},
		},
		{
			"empty selection is inert",
			FieldFilter{FieldKey: media.KeyMake, Mode: ModeOR},
			[]string{"canon.jpg", "nikon.jpg", "bare.jpg"},
		},
		{
			"missing field fails a non-empty selection",
			FieldFilter{FieldKey: media.KeyLensModel, SelectedValues: []string{"RF"}, Mode: ModeOR},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AdvancedConfig{
				FieldFilters: map[string]FieldFilter{tt.filter.FieldKey: tt.filter},
				MatchMode:    ModeAND,
			}
			got := Advanced(items, cfg)
			if !equalNames(got, tt.want...) {
				t.Errorf("got %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestAdvancedAcrossFields(t *testing.T) {
	items := []media.PhotoItem{
		photo("a.jpg", "jpg", map[string]string{media.KeyMake: "Canon", media.KeyISO: "400"}),
		photo("b.jpg", "jpg", map[string]string{media.KeyMake: "Canon", media.KeyISO: "100"}),
		photo("c.jpg", "jpg", map[string]string{media.KeyMake: "Nikon", media.KeyISO: "400"}),
	}

	filters := map[string]FieldFilter{
		media.KeyMake: {FieldKey: media.KeyMake, SelectedValues: []string{"Canon"}, Mode: ModeOR},
		media.KeyISO:  {FieldKey: media.KeyISO, SelectedValues: []string{"400"}, Mode: ModeOR},
	}

	t.Run("and requires every field", func(t *testing.T) {
		got := Advanced(items, AdvancedConfig{FieldFilters: filters, MatchMode: ModeAND})
		if !equalNames(got, "a.jpg") {
			t.Errorf("got %v, want [a.jpg]", names(got))
		}
	})

	t.Run("or requires any field", func(t *testing.T) {
		got := Advanced(items, AdvancedConfig{FieldFilters: filters, MatchMode: ModeOR})
		if !equalNames(got, "a.jpg", "b.jpg", "c.jpg") {
			t.Errorf("got %v, want all items", names(got))
		}
	})
}
