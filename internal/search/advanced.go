package search

import (
	"strings"

	"photo-catalog/internal/media"
)

// FieldFilter selects photos by the values of a single metadata field.
// Mode combines the selected values; an empty selection makes the
// filter inert (it matches everything rather than nothing, since a UI
// interaction may leave selector state empty).
type FieldFilter struct {
	FieldKey       string   `json:"fieldKey"`
	SelectedValues []string `json:"selectedValues"`
	Mode           Mode     `json:"searchMode"`
}

// AdvancedConfig is a structured multi-field filter. MatchMode combines
// the per-field results across fields.
type AdvancedConfig struct {
	FieldFilters map[string]FieldFilter `json:"fieldFilters"`
	MatchMode    Mode                   `json:"matchMode"`
}

// Advanced applies structured per-field filtering, preserving input
// order. With no field filters configured the input is returned
// unchanged; advanced filtering is opt-in, not a restriction.
func Advanced(items []media.PhotoItem, config AdvancedConfig) []media.PhotoItem {
	if len(config.FieldFilters) == 0 {
		return items
	}

	out := make([]media.PhotoItem, 0, len(items))
	for _, item := range items {
		if matchesConfig(item, config) {
			out = append(out, item)
		}
	}
	return out
}

func matchesConfig(item media.PhotoItem, config AdvancedConfig) bool {
	for _, f := range config.FieldFilters {
		matched := matchesField(item, f)
		switch config.MatchMode {
		case ModeOR:
			if matched {
				return true
			}
		default: // ModeAND
			if !matched {
				return false
			}
		}
	}
	return config.MatchMode != ModeOR
}

// matchesField checks one field filter against the photo's metadata
// value for that field. A photo lacking the field fails a non-empty
// filter; value comparison is case-insensitive substring matching.
func matchesField(item media.PhotoItem, f FieldFilter) bool {
	if len(f.SelectedValues) == 0 {
		return true
	}

	value, ok := item.Metadata[f.FieldKey]
	if !ok {
		return false
	}
	value = strings.ToLower(value)

	for _, selected := range f.SelectedValues {
		contains := strings.Contains(value, strings.ToLower(selected))
		switch f.Mode {
		case ModeAND:
			if !contains {
				return false
			}
		default: // ModeOR
			if contains {
				return true
			}
		}
	}
	return f.Mode == ModeAND
}
