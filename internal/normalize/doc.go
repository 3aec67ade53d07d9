// Package normalize canonicalizes search text so that Japanese and
// English spelling variants of camera vocabulary match each other.
//
// Katakana/hiragana variation, full-width/half-width forms and letter
// case are all collapsed, and a fixed bilingual dictionary expands
// tokens to their canonical English tag ("レンズ" gains "lens").
package normalize
