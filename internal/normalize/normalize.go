package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize canonicalizes free text for search matching so that
// Japanese/English synonyms and script variants compare equal.
//
// Steps, in order:
//  1. Unicode canonical composition (NFC)
//  2. katakana to hiragana (U+30A1..U+30F6)
//  3. full-width to half-width (Latin letters, digits, katakana)
//  4. lower-casing
//  5. synonym expansion against the bilingual dictionary
//
// Blank input normalizes to the empty string. The function is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	return expandSynonyms(canonicalForm(text))
}

// canonicalForm applies steps 1-4: NFC, katakana to hiragana, width
// narrowing and lower-casing. Synonym dictionary keys are stored in this
// form so token lookups match regardless of the input script.
func canonicalForm(text string) string {
	s := norm.NFC.String(text)
	s = toHiragana(s)
	s = width.Narrow.String(s)
	return strings.ToLower(s)
}

// NormalizeKeywords normalizes each keyword, dropping any that become
// empty. Input order is preserved.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if n := Normalize(k); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// toHiragana maps the standard katakana syllable range (including small
// ka, small ke and small wa) onto hiragana. Characters outside the range,
// such as the prolonged sound mark, pass through unchanged.
func toHiragana(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 'ァ' && r <= 'ヶ' {
			r = r - 'ァ' + 'ぁ'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// expandSynonyms splits on whitespace and emits, for every token, the
// token itself plus its canonical English tag when the dictionary knows
// it. Duplicates collapse; first-seen order is kept so the result is
// deterministic.
func expandSynonyms(text string) string {
	words := strings.Fields(text)
	seen := make(map[string]bool, len(words)*2)
	out := make([]string, 0, len(words)*2)

	add := func(w string) {
		if w != "" && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}

	for _, word := range words {
		add(word)
		if canonical, ok := reverseSynonyms[word]; ok {
			add(canonical)
		}
	}

	return strings.Join(out, " ")
}
