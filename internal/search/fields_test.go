package search

import (
	"reflect"
	"testing"

	"photo-catalog/internal/media"
)

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey(media.KeyLensModel)
	if !ok {
		t.Fatalf("FieldByKey(%q) not found", media.KeyLensModel)
	}
	if f.Category != CategoryLens {
		t.Errorf("category = %q, want %q", f.Category, CategoryLens)
	}

	if _, ok := FieldByKey("Exif IFD0:Nonexistent"); ok {
		t.Error("unknown key reported as found")
	}
}

func TestDefinedFieldsHaveUniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range DefinedFields {
		if seen[f.Key] {
			t.Errorf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = true
	}
}

func TestAvailableValues(t *testing.T) {
	items := []media.PhotoItem{
		photo("a.jpg", "jpg", map[string]string{media.KeyMake: "Canon", media.KeyISO: "400"}),
		photo("b.jpg", "jpg", map[string]string{media.KeyMake: "Nikon", media.KeyISO: "400"}),
		photo("c.jpg", "jpg", map[string]string{media.KeyMake: "Canon"}),
		photo("d.jpg", "jpg", nil),
	}

	got := AvailableValues(items)

	if want := []string{"Canon", "Nikon"}; !reflect.DeepEqual(got[media.KeyMake], want) {
		t.Errorf("makes = %v, want %v", got[media.KeyMake], want)
	}
	if want := []string{"400"}; !reflect.DeepEqual(got[media.KeyISO], want) {
		t.Errorf("iso values = %v, want %v", got[media.KeyISO], want)
	}
	if _, present := got[media.KeyLensModel]; present {
		t.Error("field with no values should be absent from the result")
	}
}

func TestAvailableValuesEmptyCatalog(t *testing.T) {
	if got := AvailableValues(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
