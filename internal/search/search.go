package search

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"photo-catalog/internal/media"
	"photo-catalog/internal/normalize"
)

// Mode selects how multiple keywords (or selected values) combine.
type Mode string

const (
	// ModeOR matches when any keyword matches.
	ModeOR Mode = "or"
	// ModeAND matches only when every keyword matches.
	ModeAND Mode = "and"
)

// Filter returns the photos matching the free-text query plus the
// extension and capture-date post-filters. Input order is preserved; an
// empty or blank query applies no keyword restriction.
//
// The query is split on commas into keywords, each trimmed and
// lower-cased; matching is plain substring search against the photo's
// haystack text.
func Filter(items []media.PhotoItem, query string, extensions map[string]bool, dateRange *media.DateRange, mode Mode) []media.PhotoItem {
	return filter(items, parseQuery(query, false), extensions, dateRange, mode)
}

// FilterNormalized behaves like Filter but runs every keyword through
// the text normalizer first, so Japanese/English spelling variants of
// camera vocabulary ("レンズ", "lens") match the same photos. Each
// keyword matches when any of its expansion tokens is found.
func FilterNormalized(items []media.PhotoItem, query string, extensions map[string]bool, dateRange *media.DateRange, mode Mode) []media.PhotoItem {
	return filter(items, parseQuery(query, true), extensions, dateRange, mode)
}

// parseQuery splits the comma-separated query into keywords; each
// keyword becomes the list of tokens that count as a match for it.
func parseQuery(query string, expand bool) [][]string {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var keywords [][]string
	for _, segment := range strings.Split(query, ",") {
		segment = strings.ToLower(strings.TrimSpace(segment))
		if segment == "" {
			continue
		}
		if !expand {
			keywords = append(keywords, []string{segment})
			continue
		}
		tokens := strings.Fields(normalize.Normalize(segment))
		if len(tokens) == 0 {
			tokens = []string{segment}
		}
		keywords = append(keywords, tokens)
	}
	return keywords
}

func filter(items []media.PhotoItem, keywords [][]string, extensions map[string]bool, dateRange *media.DateRange, mode Mode) []media.PhotoItem {
	out := make([]media.PhotoItem, 0, len(items))
	for _, item := range items {
		if !matchesKeywords(item, keywords, mode) {
			continue
		}
		if len(extensions) > 0 && !extensions[strings.ToLower(item.Extension)] {
			continue
		}
		// A photo without a capture date always passes; the range cannot
		// exclude unknown dates.
		if dateRange != nil && item.CapturedAt != nil && !dateRange.Contains(*item.CapturedAt) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesKeywords(item media.PhotoItem, keywords [][]string, mode Mode) bool {
	if len(keywords) == 0 {
		return true
	}

	haystack := buildHaystack(item)

	for _, tokens := range keywords {
		found := false
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				found = true
				break
			}
		}
		switch mode {
		case ModeAND:
			if !found {
				return false
			}
		default: // ModeOR
			if found {
				return true
			}
		}
	}
	return mode == ModeAND
}

// buildHaystack concatenates every searchable text of a photo into one
// lower-cased string: file name, extension, all metadata "key value"
// pairs, "WIDTHxHEIGHT", file size, capture time and the user-editable
// title/tags/comment. Metadata keys are sorted so the haystack is
// deterministic.
func buildHaystack(item media.PhotoItem) string {
	var b strings.Builder

	b.WriteString(item.DisplayName)
	b.WriteByte(' ')
	b.WriteString(item.Extension)

	keys := make([]string, 0, len(item.Metadata))
	for k := range item.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte(' ')
		b.WriteString(item.Metadata[k])
	}

	if item.HasDimensions() {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(item.Width))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(item.Height))
	}

	if item.SizeBytes > 0 {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(item.SizeBytes, 10))
	}

	if item.CapturedAt != nil {
		b.WriteByte(' ')
		b.WriteString(item.CapturedAt.Format(time.RFC3339))
	}

	b.WriteByte(' ')
	b.WriteString(item.Title)
	for _, tag := range item.Tags {
		b.WriteByte(' ')
		b.WriteString(tag)
	}
	b.WriteByte(' ')
	b.WriteString(item.Comment)

	return strings.ToLower(b.String())
}
