package search

import (
	"sort"

	"photo-catalog/internal/media"
)

// Category groups searchable fields in the advanced filter UI.
type Category string

const (
	CategoryCamera    Category = "camera"
	CategoryLens      Category = "lens"
	CategoryExposure  Category = "exposure"
	CategoryFocus     Category = "focus"
	CategoryGPS       Category = "gps"
	CategoryDate      Category = "date"
	CategoryImageInfo Category = "image_info"
	CategorySoftware  Category = "software"
)

// SearchField describes one EXIF-derived field eligible for structured
// filtering. Key is the exact metadata map key the scanner produces;
// Keywords are bilingual synonyms for free-text matching only and play
// no role in structured filtering.
type SearchField struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"displayName"`
	Category    Category `json:"category"`
	Keywords    []string `json:"keywords,omitempty"`
}

// DefinedFields is the static registry of searchable fields, in display
// order. Immutable module-level data; never mutated at runtime.
var DefinedFields = []SearchField{
	{
		Key:         media.KeyMake,
		DisplayName: "Camera make",
		Category:    CategoryCamera,
		Keywords:    []string{"make", "manufacturer", "メーカー", "製造元"},
	},
	{
		Key:         media.KeyModel,
		DisplayName: "Camera model",
		Category:    CategoryCamera,
		Keywords:    []string{"model", "camera", "機種", "カメラ"},
	},
	{
		Key:         media.KeyLensModel,
		DisplayName: "Lens model",
		Category:    CategoryLens,
		Keywords:    []string{"lens", "レンズ"},
	},
	{
		Key:         media.KeyISO,
		DisplayName: "ISO speed",
		Category:    CategoryExposure,
		Keywords:    []string{"iso", "sensitivity", "感度"},
	},
	{
		Key:         media.KeyFNumber,
		DisplayName: "Aperture (F-number)",
		Category:    CategoryExposure,
		Keywords:    []string{"aperture", "f-number", "fnumber", "絞り"},
	},
	{
		Key:         media.KeyExposureTime,
		DisplayName: "Shutter speed",
		Category:    CategoryExposure,
		Keywords:    []string{"exposure", "shutter", "速度", "露出"},
	},
	{
		Key:         media.KeyFocalLength,
		DisplayName: "Focal length",
		Category:    CategoryExposure,
		Keywords:    []string{"focal", "length", "焦点", "距離"},
	},
	{
		Key:         media.KeyGPSLatitude,
		DisplayName: "GPS latitude",
		Category:    CategoryGPS,
		Keywords:    []string{"gps", "latitude", "緯度", "位置"},
	},
	{
		Key:         media.KeyGPSLongitude,
		DisplayName: "GPS longitude",
		Category:    CategoryGPS,
		Keywords:    []string{"gps", "longitude", "経度", "位置"},
	},
	{
		Key:         media.KeySoftware,
		DisplayName: "Software",
		Category:    CategorySoftware,
		Keywords:    []string{"software", "app", "ソフト", "アプリ"},
	},
}

var fieldsByKey = buildFieldIndex()

func buildFieldIndex() map[string]SearchField {
	idx := make(map[string]SearchField, len(DefinedFields))
	for _, f := range DefinedFields {
		idx[f.Key] = f
	}
	return idx
}

// FieldByKey looks a field definition up by its metadata key.
func FieldByKey(key string) (SearchField, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// AvailableValues returns, per field key, the sorted distinct values
// present across the given photos. Fields no photo exhibits are absent
// from the result.
func AvailableValues(photos []media.PhotoItem) map[string][]string {
	sets := make(map[string]map[string]bool)
	for _, photo := range photos {
		for _, field := range DefinedFields {
			value, ok := photo.Metadata[field.Key]
			if !ok || value == "" {
				continue
			}
			if sets[field.Key] == nil {
				sets[field.Key] = make(map[string]bool)
			}
			sets[field.Key][value] = true
		}
	}

	values := make(map[string][]string, len(sets))
	for key, set := range sets {
		list := make([]string, 0, len(set))
		for v := range set {
			list = append(list, v)
		}
		sort.Strings(list)
		values[key] = list
	}
	return values
}
